package configs

import "time"

type HealthCheckConfig struct {
	RequestTimeOut        time.Duration `yaml:"request_timeout"`         // таймаут на один health check запрос
	TimeOut               time.Duration `yaml:"timeout"`                 // общий таймаут клиента
	MaxIdleConns          int           `yaml:"max_idle_conns"`          // keep-alive соединения
	IdleConnTimeout       time.Duration `yaml:"idle_conn_timeout"`       // закрытие неиспользуемого соединения
	TLSHandshakeTimeout   time.Duration `yaml:"tls_handshake_timeout"`   // ожидание TLS handshake
	ExpectContinueTimeout time.Duration `yaml:"expect_continue_timeout"` // ожидание 100-continue
	MaxConnPerHost        int           `yaml:"max_conns_per_host"`
}

func DefaultHealthCheckConfig() *HealthCheckConfig {
	return &HealthCheckConfig{
		RequestTimeOut:        3 * time.Second,
		TimeOut:               5 * time.Second,
		MaxIdleConns:          2,
		IdleConnTimeout:       30 * time.Second,
		TLSHandshakeTimeout:   3 * time.Second,
		ExpectContinueTimeout: time.Second,
		MaxConnPerHost:        2,
	}
}
