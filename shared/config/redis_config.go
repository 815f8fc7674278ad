package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// структура конфига для Redis (общий кэш результатов фильтрации)
type RedisConfig struct {
	Host            string        // Хост, где расположен redis
	Port            string        // Порт для подключения
	Password        string        // Пароль (может быть пустым для локального redis)
	DB              int32         // номер базы (0-15)
	KeyPrefix       string        // префикс ключей, чтобы не пересекаться с другими сервисами
	PoolSize        int32         // Максимальное количество одновременных TCP-соединений
	MinIdleConns    int32         // Минимальное количество соединений, которое нужно держать открытыми
	MaxRetries      int32         // Количество повторных запросов при временных сетевых сбоях
	DialTimeout     time.Duration // время ожидания установки соединения
	ReadTimeout     time.Duration // Таймаут чтения ответа от Redis
	WriteTimeout    time.Duration // Таймаут отправки команды в Redis
	IdleTimeout     time.Duration // через сколько закрывать неиспользуемое соединение
	PoolTimeout     time.Duration // Таймаут ожидания свободного соединения
	MinRetryBackOff time.Duration // Нижняя граница интервала попыток
	MaxRetryBackOff time.Duration // Верхняя граница интервала попыток
}

// NewRedisConfigFromEnv создает конфиг Redis из переменных окружения
// все ошибки валидации собираются и возвращаются одним сообщением
func NewRedisConfigFromEnv() (*RedisConfig, error) {
	var errs []string

	host, err := getRequiredEnv("REDIS_HOST")
	if err != nil {
		errs = append(errs, err.Error())
	}

	port, err := getRequiredEnv("REDIS_PORT")
	if err != nil {
		errs = append(errs, err.Error())
	}

	// без хоста и порта дальше проверять нечего
	if len(errs) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(errs, ", "))
	}

	dbNum, err := getEnvAsInt32WithValidation("REDIS_DB", 0, 0, 15)
	if err != nil {
		errs = append(errs, err.Error())
	}

	poolSize, err := getEnvAsInt32WithValidation("REDIS_POOL_SIZE", 50, 1, 1000)
	if err != nil {
		errs = append(errs, err.Error())
	}

	minIdleConns, err := getEnvAsInt32WithValidation("REDIS_MIN_IDLE_CONNS", 10, 0, 1000)
	if err != nil {
		errs = append(errs, err.Error())
	}

	if minIdleConns > poolSize {
		errs = append(errs, fmt.Sprintf("REDIS_MIN_IDLE_CONNS (%d) cannot be greater than REDIS_POOL_SIZE (%d)", minIdleConns, poolSize))
	}

	maxRetries, err := getEnvAsInt32WithValidation("REDIS_MAX_RETRIES", 2, 0, 3)
	if err != nil {
		errs = append(errs, err.Error())
	}

	dialTimeout, err := getEnvAsDurationWithValidation("REDIS_DIAL_TIMEOUT", 5*time.Second, time.Second, 30*time.Second)
	if err != nil {
		errs = append(errs, err.Error())
	}

	readTimeout, err := getEnvAsDurationWithValidation("REDIS_READ_TIMEOUT", 3*time.Second, 100*time.Millisecond, 30*time.Second)
	if err != nil {
		errs = append(errs, err.Error())
	}

	writeTimeout, err := getEnvAsDurationWithValidation("REDIS_WRITE_TIMEOUT", 3*time.Second, 100*time.Millisecond, 30*time.Second)
	if err != nil {
		errs = append(errs, err.Error())
	}

	idleTimeout, err := getEnvAsDurationWithValidation("REDIS_IDLE_TIMEOUT", 5*time.Minute, time.Minute, 24*time.Hour)
	if err != nil {
		errs = append(errs, err.Error())
	}

	poolTimeout, err := getEnvAsDurationWithValidation("REDIS_POOL_TIMEOUT", 4*time.Second, time.Second, time.Minute)
	if err != nil {
		errs = append(errs, err.Error())
	}

	minRetryBackoff, err := getEnvAsDurationWithValidation("REDIS_MIN_RETRY_BACKOFF", 100*time.Millisecond, 8*time.Millisecond, 500*time.Millisecond)
	if err != nil {
		errs = append(errs, err.Error())
	}

	maxRetryBackoff, err := getEnvAsDurationWithValidation("REDIS_MAX_RETRY_BACKOFF", time.Second, 512*time.Millisecond, 5*time.Second)
	if err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n%s", strings.Join(errs, "\n"))
	}

	return &RedisConfig{
		Host:            host,
		Port:            port,
		Password:        getEnvWithDefault("REDIS_PASSWORD", ""),
		DB:              dbNum,
		KeyPrefix:       getEnvWithDefault("REDIS_KEY_PREFIX", "job_listing"),
		PoolSize:        poolSize,
		MinIdleConns:    minIdleConns,
		MaxRetries:      maxRetries,
		DialTimeout:     dialTimeout,
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		IdleTimeout:     idleTimeout,
		PoolTimeout:     poolTimeout,
		MinRetryBackOff: minRetryBackoff,
		MaxRetryBackOff: maxRetryBackoff,
	}, nil
}

// Addr - адрес redis в формате host:port
func (r *RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// для создания клиента redis необходимо передать указатель на структуру опций: *redis.Options
func (r *RedisConfig) ToRedisOptions() *redis.Options {
	return &redis.Options{
		Addr:     r.Addr(),
		Password: r.Password,
		DB:       int(r.DB),

		PoolSize:     int(r.PoolSize),
		MinIdleConns: int(r.MinIdleConns),
		IdleTimeout:  r.IdleTimeout,
		PoolTimeout:  r.PoolTimeout,

		DialTimeout:  r.DialTimeout,
		ReadTimeout:  r.ReadTimeout,
		WriteTimeout: r.WriteTimeout,

		MaxRetries:      int(r.MaxRetries),
		MinRetryBackoff: r.MinRetryBackOff,
		MaxRetryBackoff: r.MaxRetryBackOff,
	}
}
