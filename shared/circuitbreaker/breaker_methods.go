package circuitbreaker

// Execute выполняет операцию с защитой Circuit Breaker
// fn вызывается без удержания мьютекса
func (cb *CircuitBreaker) Execute(fn func() error) error {
	if err := cb.beforeRequest(); err != nil {
		return err
	}

	err := fn()

	cb.afterRequest(err)
	return err
}

// проверка, можно ли пропустить запрос, и резервирование слота в Half-Open
func (cb *CircuitBreaker) beforeRequest() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen {
		if cb.now().Sub(cb.openedAt) < cb.resetTimeout {
			return ErrCircuitOpen
		}
		cb.setState(StateHalfOpen)
	}

	if cb.state == StateHalfOpen {
		if cb.halfOpenAttempts >= cb.halfOpenMaxRequests {
			return ErrTooManyRequests
		}
		cb.halfOpenAttempts++
	}

	cb.totalRequests++
	return nil
}

// учёт результата запроса
func (cb *CircuitBreaker) afterRequest(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.isFailure(err) {
		cb.totalFailures++
		cb.onFailure()
		return
	}

	cb.totalSuccesses++
	cb.onSuccess()
}

// onFailure обрабатывает неудачное выполнение (мьютекс захвачен вызывающим кодом)
func (cb *CircuitBreaker) onFailure() {
	switch cb.state {
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.failureThreshold {
			cb.trip()
		}
	case StateHalfOpen:
		// любая ошибка в пробном режиме возвращает в Open
		cb.trip()
	}
}

// onSuccess обрабатывает удачное выполнение (мьютекс захвачен вызывающим кодом)
func (cb *CircuitBreaker) onSuccess() {
	switch cb.state {
	case StateClosed:
		cb.failures = 0
	case StateHalfOpen:
		cb.successes++
		if cb.successes >= cb.successThreshold {
			cb.setState(StateClosed)
		}
	}
}

// перевод в Open
func (cb *CircuitBreaker) trip() {
	cb.openedAt = cb.now()
	cb.setState(StateOpen)
}

// смена состояния со сбросом счётчиков
func (cb *CircuitBreaker) setState(to State) {
	from := cb.state
	cb.state = to
	cb.failures = 0
	cb.successes = 0
	cb.halfOpenAttempts = 0

	if from != to && cb.onStateChange != nil {
		cb.onStateChange(from, to)
	}
}

// State возвращает текущее состояние
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// GetStats возвращает статистику
func (cb *CircuitBreaker) GetStats() (total, success, failure uint32) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.totalRequests, cb.totalSuccesses, cb.totalFailures
}
