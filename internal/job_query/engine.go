package job_query

import (
	"context"
	"fmt"
	"time"

	"job_listing/internal/domain/models"
)

// JobLister - источник полной коллекции вакансий
type JobLister interface {
	ListJobs(ctx context.Context) ([]models.JobRecord, error)
}

// Engine - фильтрация поверх внедрённого источника и часов
type Engine struct {
	source JobLister
	now    func() time.Time
}

// EngineOption - опция движка
type EngineOption func(*Engine)

// WithClock подменяет часы (для тестов и воспроизводимых выборок)
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// конструктор движка фильтрации
func NewEngine(source JobLister, opts ...EngineOption) *Engine {
	e := &Engine{
		source: source,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now - текущее время по часам движка
func (e *Engine) Now() time.Time {
	return e.now()
}

// Query - все вакансии источника, прошедшие фильтры
func (e *Engine) Query(ctx context.Context, criteria models.FilterCriteria) ([]models.JobRecord, error) {
	if err := Validate(criteria); err != nil {
		return nil, err
	}

	jobs, err := e.source.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	return Filter(jobs, criteria, e.now()), nil
}
