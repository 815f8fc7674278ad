// circuit breaker для защиты обращений к внешнему источнику вакансий
package circuitbreaker

import (
	"errors"
	"job_listing/shared/config"
	"sync"
	"time"
)

// Состояния Circuit Breaker
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

var (
	ErrCircuitOpen     = errors.New("circuit breaker is open")
	ErrTooManyRequests = errors.New("too many requests in half-open state")
)

// Option - функциональная опция circuit breaker
type Option func(*CircuitBreaker)

// WithStateChangeHook - колбэк на смену состояния (вызывается под мьютексом, должен быть быстрым)
func WithStateChangeHook(hook func(from, to State)) Option {
	return func(cb *CircuitBreaker) {
		cb.onStateChange = hook
	}
}

// WithFailurePredicate - какие ошибки считать отказом внешнего сервиса
// например, "вакансия не найдена" - это корректный ответ, а не отказ
func WithFailurePredicate(isFailure func(error) bool) Option {
	return func(cb *CircuitBreaker) {
		cb.isFailure = isFailure
	}
}

// Структура Circuit Breaker
type CircuitBreaker struct {
	mu sync.Mutex

	failureThreshold    uint32
	successThreshold    uint32
	halfOpenMaxRequests uint32
	resetTimeout        time.Duration

	state            State
	failures         uint32
	successes        uint32
	halfOpenAttempts uint32
	openedAt         time.Time

	totalRequests  uint32
	totalSuccesses uint32
	totalFailures  uint32

	onStateChange func(from, to State)
	isFailure     func(error) bool
	now           func() time.Time
}

// конструктор circuit breaker; нулевые значения конфига заменяются дефолтными
func NewCircuitBreaker(cfg config.CircuitBreakerConfig, opts ...Option) *CircuitBreaker {
	def := config.DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = def.FailureThreshold
	}
	if cfg.SuccessThreshold == 0 {
		cfg.SuccessThreshold = def.SuccessThreshold
	}
	if cfg.HalfOpenMaxRequests == 0 {
		cfg.HalfOpenMaxRequests = def.HalfOpenMaxRequests
	}
	if cfg.ResetTimeout <= 0 {
		cfg.ResetTimeout = def.ResetTimeout
	}

	cb := &CircuitBreaker{
		failureThreshold:    cfg.FailureThreshold,
		successThreshold:    cfg.SuccessThreshold,
		halfOpenMaxRequests: cfg.HalfOpenMaxRequests,
		resetTimeout:        cfg.ResetTimeout,
		state:               StateClosed,
		isFailure:           func(err error) bool { return err != nil },
		now:                 time.Now,
	}

	for _, opt := range opts {
		opt(cb)
	}

	return cb
}
