package result_cache

import (
	"context"
	"time"

	"job_listing/internal/domain/models"
	"job_listing/internal/job_query"
	"job_listing/internal/listing_interfaces"
	"job_listing/shared/logger"

	"github.com/pterm/pterm"
)

// Engine - фильтрация вакансий с доступом к часам
type Engine interface {
	Query(ctx context.Context, criteria models.FilterCriteria) ([]models.JobRecord, error)
	Now() time.Time
}

// CachedQuerier - фильтрация с кэшем результатов. Ошибки кэша не ломают выдачу,
// запрос уходит в движок
type CachedQuerier struct {
	engine     Engine
	cache      listing_interfaces.ResultCache // nil - без кэша
	sourceName string
	ttl        time.Duration
	log        *pterm.Logger
}

func NewCachedQuerier(engine Engine, cache listing_interfaces.ResultCache, sourceName string, ttl time.Duration, log *pterm.Logger) *CachedQuerier {
	if log == nil {
		log = logger.Nop()
	}
	return &CachedQuerier{
		engine:     engine,
		cache:      cache,
		sourceName: sourceName,
		ttl:        ttl,
		log:        log,
	}
}

func (q *CachedQuerier) Query(ctx context.Context, criteria models.FilterCriteria) ([]models.JobRecord, error) {
	if q.cache == nil || q.ttl <= 0 {
		return q.engine.Query(ctx, criteria)
	}
	// невалидные фильтры не должны попадать в кэш
	if err := job_query.Validate(criteria); err != nil {
		return nil, err
	}

	key := Key(q.sourceName, criteria, q.engine.Now())

	jobs, ok, err := q.cache.Get(ctx, key)
	if err != nil {
		q.log.Warn("result cache get failed", q.log.Args("key", key, "error", err.Error()))
	}
	if ok {
		q.log.Trace("result cache hit", q.log.Args("key", key, "items", len(jobs)))
		return jobs, nil
	}

	jobs, err = q.engine.Query(ctx, criteria)
	if err != nil {
		return nil, err
	}

	if err := q.cache.Set(ctx, key, jobs, q.ttl); err != nil {
		q.log.Warn("result cache set failed", q.log.Args("key", key, "error", err.Error()))
	}
	return jobs, nil
}

// Now - часы движка
func (q *CachedQuerier) Now() time.Time {
	return q.engine.Now()
}

// Проверка на этапе компиляции, что движок подходит
var _ Engine = (*job_query.Engine)(nil)
