package result_cache

import (
	"context"
	"time"

	"job_listing/internal/domain/models"
	"job_listing/internal/listing_interfaces"
)

// InmemoryResultCache - выборки в кэше процесса
type InmemoryResultCache struct {
	cache listing_interfaces.CacheInterface
}

func NewInmemoryResultCache(cache listing_interfaces.CacheInterface) *InmemoryResultCache {
	return &InmemoryResultCache{cache: cache}
}

func (c *InmemoryResultCache) Get(_ context.Context, key string) ([]models.JobRecord, bool, error) {
	item, ok := c.cache.GetItem(key)
	if !ok {
		return nil, false, nil
	}
	jobs, ok := item.([]models.JobRecord)
	if !ok {
		// чужое значение под нашим ключом - считаем промахом
		c.cache.DeleteItem(key)
		return nil, false, nil
	}
	out := make([]models.JobRecord, len(jobs))
	copy(out, jobs)
	return out, true, nil
}

func (c *InmemoryResultCache) Set(_ context.Context, key string, jobs []models.JobRecord, ttl time.Duration) error {
	stored := make([]models.JobRecord, len(jobs))
	copy(stored, jobs)
	c.cache.AddItemWithTTL(key, stored, ttl)
	return nil
}

// Проверка на этапе компиляции, что тип реализует интерфейс
var _ listing_interfaces.ResultCache = (*InmemoryResultCache)(nil)
