// общие интерфейсы инфраструктурных компонентов
package interfaces

import "context"

// интерфейс ограничителя частоты запросов
type RateLimiter interface {
	Wait(ctx context.Context) error
	Stop()
}

// интерфейс circuit breaker
type CBInterface interface {
	Execute(fn func() error) error
	GetStats() (total, success, failure uint32)
}
