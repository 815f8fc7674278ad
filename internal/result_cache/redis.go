package result_cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"job_listing/internal/domain/models"
	"job_listing/internal/listing_interfaces"
	sharedredis "job_listing/shared/redis"
)

// ByteStore - хранилище байтов с TTL (redis адаптер)
type ByteStore interface {
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error
	GetBytes(ctx context.Context, key string) ([]byte, error)
}

// RedisResultCache - выборки в redis в виде json, общий кэш для нескольких экземпляров сервиса
type RedisResultCache struct {
	store ByteStore
}

func NewRedisResultCache(store ByteStore) *RedisResultCache {
	return &RedisResultCache{store: store}
}

func (c *RedisResultCache) Get(ctx context.Context, key string) ([]models.JobRecord, bool, error) {
	data, err := c.store.GetBytes(ctx, key)
	if errors.Is(err, sharedredis.ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var jobs []models.JobRecord
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, false, fmt.Errorf("decode cached jobs: %w", err)
	}
	if jobs == nil {
		jobs = []models.JobRecord{}
	}
	return jobs, true, nil
}

func (c *RedisResultCache) Set(ctx context.Context, key string, jobs []models.JobRecord, ttl time.Duration) error {
	if jobs == nil {
		jobs = []models.JobRecord{}
	}
	data, err := json.Marshal(jobs)
	if err != nil {
		return fmt.Errorf("encode jobs: %w", err)
	}
	if err := c.store.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Проверка на этапе компиляции, что тип реализует интерфейс
var (
	_ listing_interfaces.ResultCache = (*RedisResultCache)(nil)
	_ ByteStore                      = (*sharedredis.CacheRedisAdapter)(nil)
)
