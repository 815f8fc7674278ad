// описание общего конфига сервиса списка вакансий
package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"job_listing/shared/config"
	"job_listing/shared/logger"

	"github.com/joho/godotenv"
)

// переменные окружения с путями к yaml-конфигам
const (
	ServerConfigEnv      = "SERVER_CONFIG_ADDRESS_STRING"
	ListingConfigEnv     = "LISTING_CONFIG_ADDRESS_STRING"
	SourceConfigEnv      = "SOURCE_CONFIG_ADDRESS_STRING"
	CacheConfigEnv       = "CACHE_CONFIG_ADDRESS_STRING"
	HealthCheckConfigEnv = "HEALTH_CHECK_CONFIG_ADDRESS_STRING"
)

type JobListingConfig struct {
	ServerConf  *config.ServerConfig
	Listing     *ListingConfig
	Source      *SourceConfig
	Cache       *CacheConfig
	HealthCheck *HealthCheckConfig
	Redis       *config.RedisConfig // nil, если кэш не в redis
	Log         logger.Config
	EnvLoaded   bool // был ли прочитан .env
}

// загружаем конфиг: .env (если есть), затем yaml-секции по путям из окружения
func LoadConfig(envPath string) (*JobListingConfig, error) {
	if envPath == "" {
		envPath = ".env"
	}

	envLoaded := true
	if err := godotenv.Load(envPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error during loading %s: %w", envPath, err)
		}
		// без .env работаем на переменных окружения процесса
		envLoaded = false
	}

	serverConfig, err := config.LoadYAMLConfig[config.ServerConfig](os.Getenv(ServerConfigEnv), config.UseDefaultServerConfig)
	if err != nil {
		return nil, fmt.Errorf("error during loading server config: %w", err)
	}
	if err := serverConfig.Validate(); err != nil {
		return nil, err
	}

	listingConfig, err := config.LoadYAMLConfig[ListingConfig](os.Getenv(ListingConfigEnv), DefaultListingConfig)
	if err != nil {
		return nil, fmt.Errorf("error during loading listing config: %w", err)
	}
	if err := listingConfig.Validate(); err != nil {
		return nil, err
	}

	sourceConfig, err := config.LoadYAMLConfig[SourceConfig](os.Getenv(SourceConfigEnv), DefaultSourceConfig)
	if err != nil {
		return nil, fmt.Errorf("error during loading source config: %w", err)
	}
	if err := sourceConfig.Validate(); err != nil {
		return nil, err
	}

	cacheConfig, err := config.LoadYAMLConfig[CacheConfig](os.Getenv(CacheConfigEnv), DefaultCacheConfig)
	if err != nil {
		return nil, fmt.Errorf("error during loading cache config: %w", err)
	}
	if err := cacheConfig.Validate(); err != nil {
		return nil, err
	}

	healthCheckConfig, err := config.LoadYAMLConfig[HealthCheckConfig](os.Getenv(HealthCheckConfigEnv), DefaultHealthCheckConfig)
	if err != nil {
		return nil, fmt.Errorf("error during loading health check config: %w", err)
	}

	var redisConfig *config.RedisConfig
	if cacheConfig.Backend == CacheBackendRedis {
		redisConfig, err = config.NewRedisConfigFromEnv()
		if err != nil {
			return nil, fmt.Errorf("error during loading redis config: %w", err)
		}
	}

	return &JobListingConfig{
		ServerConf:  serverConfig,
		Listing:     listingConfig,
		Source:      sourceConfig,
		Cache:       cacheConfig,
		HealthCheck: healthCheckConfig,
		Redis:       redisConfig,
		Log:         logger.ConfigFromEnv(),
		EnvLoaded:   envLoaded,
	}, nil
}
