package configs

import (
	"time"

	"job_listing/shared/config"
)

// бэкенды кэша результатов фильтрации
const (
	CacheBackendNone     = "none"
	CacheBackendInmemory = "inmemory"
	CacheBackendRedis    = "redis"
)

// конфиг кэша результатов фильтрации
type CacheConfig struct {
	Backend     string        `yaml:"backend"`       // none | inmemory | redis
	NumOfShards int           `yaml:"num_of_shards"` // для inmemory
	TTL         time.Duration `yaml:"ttl"`           // время жизни записи
	CleanUp     time.Duration `yaml:"cleanup"`       // интервал очистки inmemory кэша
}

func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Backend:     CacheBackendInmemory,
		NumOfShards: 16,
		TTL:         30 * time.Second,
		CleanUp:     time.Minute,
	}
}

// проверка конфига кэша
func (c *CacheConfig) Validate() error {
	switch c.Backend {
	case CacheBackendNone, CacheBackendRedis:
	case CacheBackendInmemory:
		if c.NumOfShards <= 0 {
			return &config.ConfigError{Field: "NumOfShards", Msg: "must be positive"}
		}
	default:
		return &config.ConfigError{Field: "Backend", Msg: "unknown cache backend " + c.Backend}
	}
	if c.Backend != CacheBackendNone && c.TTL <= 0 {
		return &config.ConfigError{Field: "TTL", Msg: "must be positive"}
	}
	return nil
}
