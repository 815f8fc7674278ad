package config

import (
	"time"
)

// структура для конфига http сервера
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxHeaderBytes  int           `yaml:"max_header_bytes"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`  // список доменов для CORS
	ClientRPS       float64       `yaml:"client_rps"`       // ограничение входящих запросов на одного клиента (0 - без ограничения)
	ClientBurst     int           `yaml:"client_burst"`     // размер "пачки" запросов для rate limiter клиента
	GinMode         string        `yaml:"gin_mode"`         // debug | release | test
}

// функция для создания конфига сервера по - дефолту
func UseDefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:            "localhost",
		Port:            "8080",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		MaxHeaderBytes:  1 << 20,
		AllowedOrigins:  []string{"http://localhost:8080", "http://localhost:5500"},
		ClientRPS:       20,
		ClientBurst:     40,
		GinMode:         "release",
	}
}

// метод конфига сервера для формирования адреса
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// метод проверки значений конфига сервера
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return &ConfigError{Field: "Port", Msg: "port is required"}
	}
	if c.ClientRPS < 0 {
		return &ConfigError{Field: "ClientRPS", Msg: "must be non-negative"}
	}
	if c.ClientRPS > 0 && c.ClientBurst <= 0 {
		return &ConfigError{Field: "ClientBurst", Msg: "must be positive when client_rps is set"}
	}
	return nil
}

// Вспомогательная структура для ошибок конфигурации
type ConfigError struct {
	Field string
	Msg   string
}

// метод вспомогательной функции для формирования ошибок
func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Msg
}
