package listing_interfaces

import (
	"context"

	"job_listing/internal/domain/models"
)

// JobSource - источник вакансий (yaml-файл или внешний API)
type JobSource interface {
	ListJobs(ctx context.Context) ([]models.JobRecord, error)
	GetJob(ctx context.Context, id models.JobID) (models.JobRecord, error)
	SuggestLocations(ctx context.Context, prefix string, limit int) ([]models.Location, error)
	Name() string
}

// HealthReporter - источник, у которого есть внешний адрес для health check
type HealthReporter interface {
	HealthEndpoint() string
}
