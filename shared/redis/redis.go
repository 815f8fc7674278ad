package redis

import (
	"context"
	"errors"
	"fmt"
	"job_listing/shared/config"

	"github.com/go-redis/redis/v8"
)

var ErrNilConfig = errors.New("redis config is nil")

// создание клиента redis с проверкой подключения
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	client := redis.NewClient(cfg.ToRedisOptions())

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection to %s failed: %w", cfg.Addr(), err)
	}

	return client, nil
}

// конструктор адаптера кэша поверх нового клиента
func NewRedisCacheAdapter(ctx context.Context, cfg *config.RedisConfig) (*CacheRedisAdapter, error) {
	client, err := NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewCacheAdapter(client, cfg.KeyPrefix), nil
}
