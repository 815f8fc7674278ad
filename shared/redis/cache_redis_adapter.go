package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss - ключа нет в redis
var ErrCacheMiss = errors.New("redis: cache miss")

// адаптер кэша на базе Redis, все ключи получают общий префикс
type CacheRedisAdapter struct {
	client redis.UniversalClient
	prefix string
}

// конструктор для адаптера кэша на базе Redis
func NewCacheAdapter(client redis.UniversalClient, prefix string) *CacheRedisAdapter {
	return &CacheRedisAdapter{client: client, prefix: prefix}
}

func (r *CacheRedisAdapter) key(k string) string {
	if r.prefix == "" {
		return k
	}
	return r.prefix + ":" + k
}

// метод для завершения работы клиента redis
func (r *CacheRedisAdapter) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

// метод для добавления значения с TTL в redis
func (r *CacheRedisAdapter) Set(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	return r.client.Set(ctx, r.key(key), value, expiration).Err()
}

// метод получения значения из redis по ключу (результат в виде байтового среза)
// отсутствие ключа возвращается как ErrCacheMiss
func (r *CacheRedisAdapter) GetBytes(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return data, err
}

// метод удаления элемента по ключу из redis
func (r *CacheRedisAdapter) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

// метод проверки доступности redis
func (r *CacheRedisAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
