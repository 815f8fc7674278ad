package configs

import (
	"time"

	"job_listing/internal/domain/models"
	"job_listing/shared/config"
)

// типы источников вакансий
const (
	SourceTypeStatic = "static"
	SourceTypeRemote = "remote"
)

// конфиг источника вакансий
type SourceConfig struct {
	Type   string             `yaml:"type"` // static | remote
	Static StaticSourceConfig `yaml:"static"`
	Remote RemoteSourceConfig `yaml:"remote"`
}

// источник из yaml-файла
type StaticSourceConfig struct {
	Name      string            `yaml:"name"`
	DataFile  string            `yaml:"data_file"` // пусто - встроенный демонстрационный набор
	Locations []models.Location `yaml:"locations"` // справочник локаций для подсказок
	// сдвигать даты встроенного набора к текущему времени, чтобы фильтры today/week/month что-то находили.
	// на data_file не влияет
	RebaseSampleDates bool `yaml:"rebase_sample_dates"`
}

// внешний REST API с вакансиями
type RemoteSourceConfig struct {
	Name                  string                      `yaml:"name"`
	BaseURL               string                      `yaml:"base_url"`                // GET {base_url}/jobs, /jobs/{id}, /locations?q=
	HealthEndpoint        string                      `yaml:"health_endpoint"`         // адрес для health check
	APIKey                string                      `yaml:"api_key"`                 // передаётся в заголовке X-API-Key, если задан
	Timeout               time.Duration               `yaml:"timeout"`                 // общий таймаут http клиента
	RateLimit             time.Duration               `yaml:"rate_limit"`              // минимальный интервал между запросами
	MaxConcurrent         int                         `yaml:"max_concurrent"`          // размер семафора
	SnapshotTTL           time.Duration               `yaml:"snapshot_ttl"`            // сколько держать загруженный список вакансий
	MaxIdleConns          int                         `yaml:"max_idle_conns"`          // keep-alive соединения на хост
	IdleConnTimeout       time.Duration               `yaml:"idle_conn_timeout"`       // закрытие неиспользуемого соединения
	TLSHandshakeTimeout   time.Duration               `yaml:"tls_handshake_timeout"`   // ожидание TLS handshake
	ResponseHeaderTimeout time.Duration               `yaml:"response_header_timeout"` // ожидание заголовков ответа
	CircuitBreaker        config.CircuitBreakerConfig `yaml:"circuit_breaker"`
}

func DefaultSourceConfig() *SourceConfig {
	return &SourceConfig{
		Type: SourceTypeStatic,
		Static: StaticSourceConfig{
			Name: "static",
			Locations: []models.Location{
				{ID: "ica", Name: "Ica"},
				{ID: "chincha", Name: "Chincha Alta"},
				{ID: "pisco", Name: "Pisco"},
				{ID: "nazca", Name: "Nazca"},
				{ID: "palpa", Name: "Palpa"},
				{ID: "parcona", Name: "Parcona"},
				{ID: "subtanjalla", Name: "Subtanjalla, Ica"},
				{ID: "la-tinguina", Name: "La Tinguiña, Ica"},
				{ID: "pueblo-nuevo", Name: "Pueblo Nuevo, Chincha"},
			},
			RebaseSampleDates: true,
		},
		Remote: RemoteSourceConfig{
			Name:                  "remote",
			Timeout:               10 * time.Second,
			RateLimit:             200 * time.Millisecond,
			MaxConcurrent:         4,
			SnapshotTTL:           time.Minute,
			MaxIdleConns:          4,
			IdleConnTimeout:       30 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ResponseHeaderTimeout: 5 * time.Second,
			CircuitBreaker:        config.DefaultCircuitBreakerConfig(),
		},
	}
}

// проверка конфига источника
func (c *SourceConfig) Validate() error {
	switch c.Type {
	case SourceTypeStatic:
		return nil
	case SourceTypeRemote:
		if c.Remote.BaseURL == "" {
			return &config.ConfigError{Field: "Remote.BaseURL", Msg: "base_url is required for remote source"}
		}
		if c.Remote.RateLimit <= 0 {
			return &config.ConfigError{Field: "Remote.RateLimit", Msg: "must be positive"}
		}
		if c.Remote.MaxConcurrent <= 0 {
			return &config.ConfigError{Field: "Remote.MaxConcurrent", Msg: "must be positive"}
		}
		if c.Remote.Timeout <= 0 {
			return &config.ConfigError{Field: "Remote.Timeout", Msg: "must be positive"}
		}
		return nil
	default:
		return &config.ConfigError{Field: "Type", Msg: "unknown source type " + c.Type}
	}
}
