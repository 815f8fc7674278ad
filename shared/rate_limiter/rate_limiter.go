// ограничение частоты исходящих запросов к внешнему источнику вакансий
package rate_limiter

import (
	"context"
	"errors"
	"job_listing/shared/interfaces"
	"sync"
	"time"
)

var (
	ErrStopped     = errors.New("rate limiter stopped")
	ErrInvalidRate = errors.New("rate must be greater than zero")
)

// rate limiter на канале: тикер раз в rate кладёт токен в буфер на 1 элемент
type ChannelRateLimiter struct {
	limiter chan struct{}
	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.RWMutex
	stopped bool
	rate    time.Duration
}

// конструктор rate limiter с интервалом между запросами
// первый токен доступен сразу, следующие - не чаще одного раза в rate
func NewChannelRateLimiter(rate time.Duration) (*ChannelRateLimiter, error) {
	if rate <= 0 {
		return nil, ErrInvalidRate
	}

	ctx, cancel := context.WithCancel(context.Background())

	rl := &ChannelRateLimiter{
		limiter: make(chan struct{}, 1),
		ctx:     ctx,
		cancel:  cancel,
		rate:    rate,
	}
	rl.limiter <- struct{}{}

	go rl.run()

	return rl, nil
}

// горутина с тикером, пополняет буфер токеном
func (rl *ChannelRateLimiter) run() {
	ticker := time.NewTicker(rl.rate)
	defer ticker.Stop()

	for {
		select {
		case <-rl.ctx.Done():
			return
		case <-ticker.C:
			rl.mu.RLock()
			if rl.stopped {
				rl.mu.RUnlock()
				return
			}
			// буфер полон - токен пропускаем, "долги" не копятся
			select {
			case rl.limiter <- struct{}{}:
			default:
			}
			rl.mu.RUnlock()
		}
	}
}

// ожидание токена с учётом внешнего контекста
func (rl *ChannelRateLimiter) Wait(ctx context.Context) error {
	rl.mu.RLock()
	stopped := rl.stopped
	rl.mu.RUnlock()

	if stopped {
		return ErrStopped
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-rl.ctx.Done():
		return ErrStopped
	case _, ok := <-rl.limiter:
		if !ok {
			return ErrStopped
		}
		return nil
	}
}

// Rate - интервал между токенами
func (rl *ChannelRateLimiter) Rate() time.Duration {
	return rl.rate
}

// остановка rate limiter, повторный вызов безопасен
func (rl *ChannelRateLimiter) Stop() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if !rl.stopped {
		rl.stopped = true
		rl.cancel()
		close(rl.limiter)
	}
}

// Проверка на этапе компиляции, что тип реализует интерфейс
var _ interfaces.RateLimiter = (*ChannelRateLimiter)(nil)
