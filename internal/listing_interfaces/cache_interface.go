package listing_interfaces

import (
	"context"
	"time"

	"job_listing/internal/domain/models"
)

// ResultCache - кэш отфильтрованных наборов вакансий
type ResultCache interface {
	Get(ctx context.Context, key string) ([]models.JobRecord, bool, error)
	Set(ctx context.Context, key string, jobs []models.JobRecord, ttl time.Duration) error
}

// CacheInterface - хранилище значений с TTL в памяти процесса
type CacheInterface interface {
	GetItem(key string) (interface{}, bool)
	AddItemWithTTL(key string, value interface{}, ttl time.Duration)
	DeleteItem(key string)
}
