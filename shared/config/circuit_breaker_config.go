package config

import "time"

// CircuitBreakerConfig - конфигурация Circuit Breaker
type CircuitBreakerConfig struct {
	FailureThreshold    uint32        `yaml:"failure_threshold"`      // сколько ошибок подряд переводят CB в Open
	SuccessThreshold    uint32        `yaml:"success_threshold"`      // сколько успешных запросов в Half-Open возвращают CB в Closed
	HalfOpenMaxRequests uint32        `yaml:"half_open_max_requests"` // сколько пробных запросов пропускается в Half-Open
	ResetTimeout        time.Duration `yaml:"reset_timeout"`          // время в Open до перехода в Half-Open
}

// конфиг circuit breaker по умолчанию
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		FailureThreshold:    5,
		SuccessThreshold:    2,
		HalfOpenMaxRequests: 2,
		ResetTimeout:        10 * time.Second,
	}
}
