// сервисный слой списка вакансий: фильтры -> выборка -> страница
package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"job_listing/configs"
	"job_listing/internal/domain/models"
	"job_listing/internal/job_query"
	"job_listing/internal/listing"
	"job_listing/internal/listing_interfaces"
	"job_listing/internal/paginator"
	"job_listing/shared/logger"

	"github.com/pterm/pterm"
)

// Querier - фильтрация вакансий (с кэшем или без) и её часы
type Querier interface {
	Query(ctx context.Context, criteria models.FilterCriteria) ([]models.JobRecord, error)
	Now() time.Time
}

// описание интерфейса сервисного слоя
type ListingServiceInterface interface {
	ListJobs(ctx context.Context, params map[string]string, page, perPage int) (listing.Page, models.FilterCriteria, error)
	GetJob(ctx context.Context, id models.JobID) (models.JobRecord, error)
	SuggestLocations(ctx context.Context, prefix string, limit int) ([]models.Location, error)
	FilterCatalog() []listing.FilterGroup
	Health(ctx context.Context) HealthStatus
	Now() time.Time
	StopServices(ctx context.Context)
}

// HealthStatus - состояние сервиса и источника
type HealthStatus struct {
	Source          string
	UpstreamChecked bool
	UpstreamHealthy bool
	UpstreamLatency time.Duration
	UpstreamError   error
}

// Healthy - источник доступен (или проверять нечего)
func (h HealthStatus) Healthy() bool {
	return !h.UpstreamChecked || h.UpstreamHealthy
}

// структура сервисного слоя
type ListingService struct {
	querier  Querier
	source   listing_interfaces.JobSource
	health   listing_interfaces.HealthClient // nil - health check источника не выполняется
	conf     *configs.ListingConfig
	log      *pterm.Logger
	stoppers []func()
}

// конструктор сервисного слоя; stoppers вызываются при остановке
func NewListingService(
	querier Querier,
	source listing_interfaces.JobSource,
	health listing_interfaces.HealthClient,
	conf *configs.ListingConfig,
	log *pterm.Logger,
	stoppers ...func(),
) *ListingService {
	if conf == nil {
		conf = configs.DefaultListingConfig()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ListingService{
		querier:  querier,
		source:   source,
		health:   health,
		conf:     conf,
		log:      log,
		stoppers: stoppers,
	}
}

// ListJobs - страница выдачи. perPage 0 - значение по умолчанию из конфига
func (s *ListingService) ListJobs(ctx context.Context, params map[string]string, page, perPage int) (listing.Page, models.FilterCriteria, error) {
	criteria, err := job_query.ParseCriteria(params)
	if err != nil {
		return listing.Page{}, models.FilterCriteria{}, err
	}

	if perPage == 0 {
		perPage = s.conf.DefaultPerPage
	}
	if perPage < 0 || perPage > s.conf.MaxPerPage {
		return listing.Page{}, criteria, fmt.Errorf("%w: per_page must be in [1, %d], got %d", paginator.ErrInvalidConfig, s.conf.MaxPerPage, perPage)
	}

	// запрос без состояния: сессия начинается с новых фильтров (страница 1), затем переход на page
	session, err := listing.NewSession(s.querier, perPage, s.conf.MaxPagesVisible)
	if err != nil {
		return listing.Page{}, criteria, err
	}
	result, err := session.ApplyCriteria(ctx, criteria)
	if err != nil {
		return listing.Page{}, criteria, err
	}
	if page != 1 {
		if result, err = session.GoToPage(ctx, page); err != nil {
			return listing.Page{}, criteria, err
		}
	}

	s.log.Debug("jobs listed", s.log.Args(
		"criteria", job_query.CanonicalKey(criteria),
		"page", page,
		"total_items", result.State.TotalItems,
	))
	return result, criteria, nil
}

func (s *ListingService) GetJob(ctx context.Context, id models.JobID) (models.JobRecord, error) {
	return s.source.GetJob(ctx, id)
}

// SuggestLocations - подсказки начинаются с LocationSuggestMin символов, раньше - пустой список
func (s *ListingService) SuggestLocations(ctx context.Context, prefix string, limit int) ([]models.Location, error) {
	if utf8.RuneCountInString(prefix) < s.conf.LocationSuggestMin {
		return []models.Location{}, nil
	}
	if limit <= 0 || limit > s.conf.LocationSuggestMax {
		limit = s.conf.LocationSuggestMax
	}
	return s.source.SuggestLocations(ctx, prefix, limit)
}

func (s *ListingService) FilterCatalog() []listing.FilterGroup {
	return listing.FilterCatalog()
}

// Health - состояние источника; внешний API опрашивается, если у источника есть health endpoint
func (s *ListingService) Health(ctx context.Context) HealthStatus {
	status := HealthStatus{Source: s.source.Name()}

	reporter, ok := s.source.(listing_interfaces.HealthReporter)
	if !ok || s.health == nil || reporter.HealthEndpoint() == "" {
		return status
	}

	latency, healthy, err := s.health.CheckHealth(ctx, reporter.HealthEndpoint())
	status.UpstreamChecked = true
	status.UpstreamHealthy = healthy
	status.UpstreamLatency = latency
	status.UpstreamError = err
	if !healthy {
		s.log.Warn("job source upstream unhealthy", s.log.Args("source", status.Source, "latency", latency.String()))
	}
	return status
}

func (s *ListingService) Now() time.Time {
	return s.querier.Now()
}

// StopServices останавливает фоновые компоненты (очистку кэша, rate limiter, соединения)
func (s *ListingService) StopServices(ctx context.Context) {
	for _, stop := range s.stoppers {
		if ctx.Err() != nil {
			s.log.Warn("stop services interrupted", s.log.Args("error", ctx.Err().Error()))
			return
		}
		stop()
	}
	s.log.Info("listing services stopped")
}
