package job_source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"job_listing/configs"
	"job_listing/internal/domain/models"
	"job_listing/internal/listing_interfaces"
	"job_listing/internal/locations"
	"job_listing/shared/circuitbreaker"
	"job_listing/shared/interfaces"
	"job_listing/shared/logger"
	"job_listing/shared/rate_limiter"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pterm/pterm"
	"golang.org/x/sync/singleflight"
)

const (
	snapshotKey      = "jobs"
	locationsKeyPref = "locations:"
	semaphoreTimeout = 2 * time.Second
	maxBodySlurp     = 1 << 20 // 1MB
)

// ошибка ответа внешнего API
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	if e.code >= 500 {
		return fmt.Sprintf("API server error %d: %s", e.code, e.body)
	}
	return fmt.Sprintf("API returned status %d: %s", e.code, e.body)
}

// RemoteSource - вакансии из внешнего REST API.
// каждый запрос проходит через circuit breaker, семафор и rate limiter;
// загруженный список держится в памяти SnapshotTTL
type RemoteSource struct {
	name           string
	baseURL        string
	healthEndpoint string
	apiKey         string
	httpClient     *http.Client
	rateLimiter    interfaces.RateLimiter
	circuitBreaker interfaces.CBInterface
	semaphore      chan struct{}
	snapshot       *gocache.Cache // nil - без кэширования
	loads          singleflight.Group
	log            *pterm.Logger
}

// NewRemoteSource - конструктор для фабрики
func NewRemoteSource(conf *configs.SourceConfig, log *pterm.Logger) (listing_interfaces.JobSource, error) {
	return NewRemoteSourceFromConfig(conf.Remote, log)
}

// NewRemoteSourceFromConfig создает источник внешнего API
func NewRemoteSourceFromConfig(conf configs.RemoteSourceConfig, log *pterm.Logger) (*RemoteSource, error) {
	if conf.BaseURL == "" {
		return nil, errors.New("remote source: base_url is required")
	}
	if conf.MaxConcurrent <= 0 {
		return nil, fmt.Errorf("remote source: max_concurrent must be positive, got %d", conf.MaxConcurrent)
	}
	// общая загрузка снимка не отменяется клиентами, её ограничивает только этот таймаут
	if conf.Timeout <= 0 {
		return nil, fmt.Errorf("remote source: timeout must be positive, got %v", conf.Timeout)
	}

	rateLimiter, err := rate_limiter.NewChannelRateLimiter(conf.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("remote source: %w", err)
	}

	if log == nil {
		log = logger.Nop()
	}

	name := conf.Name
	if name == "" {
		name = string(SourceTypeRemote)
	}

	s := &RemoteSource{
		name:           name,
		baseURL:        strings.TrimRight(conf.BaseURL, "/"),
		healthEndpoint: conf.HealthEndpoint,
		apiKey:         conf.APIKey,
		httpClient:     createHTTPClient(conf),
		rateLimiter:    rateLimiter,
		semaphore:      make(chan struct{}, conf.MaxConcurrent),
		log:            log,
	}

	s.circuitBreaker = circuitbreaker.NewCircuitBreaker(conf.CircuitBreaker,
		circuitbreaker.WithFailurePredicate(isUpstreamFailure),
		circuitbreaker.WithStateChangeHook(func(from, to circuitbreaker.State) {
			log.Warn("job source circuit breaker state changed", log.Args("source", name, "from", from.String(), "to", to.String()))
		}),
	)

	if conf.SnapshotTTL > 0 {
		s.snapshot = gocache.New(conf.SnapshotTTL, 2*conf.SnapshotTTL)
	}

	return s, nil
}

// функция, которая создаёт новый клиент с параметрами
func createHTTPClient(conf configs.RemoteSourceConfig) *http.Client {
	return &http.Client{
		Timeout: conf.Timeout,
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			MaxConnsPerHost:       conf.MaxConcurrent,
			MaxIdleConnsPerHost:   conf.MaxIdleConns,
			IdleConnTimeout:       conf.IdleConnTimeout,
			TLSHandshakeTimeout:   conf.TLSHandshakeTimeout,
			ResponseHeaderTimeout: conf.ResponseHeaderTimeout,
		},
	}
}

// 404 и отмена клиентом - не отказ внешнего сервиса
func isUpstreamFailure(err error) bool {
	if err == nil {
		return false
	}
	return !isNotFound(err) && !errors.Is(err, context.Canceled)
}

func (s *RemoteSource) Name() string {
	return s.name
}

// HealthEndpoint - адрес health check внешнего API
func (s *RemoteSource) HealthEndpoint() string {
	return s.healthEndpoint
}

// Stop освобождает rate limiter
func (s *RemoteSource) Stop() {
	s.rateLimiter.Stop()
}

// ListJobs - весь список вакансий; пока снимок свежий, API не вызывается.
// одновременные промахи снимка делают один запрос
func (s *RemoteSource) ListJobs(ctx context.Context) ([]models.JobRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cached, ok := s.cached(snapshotKey); ok {
		return cloneJobs(cached.([]models.JobRecord)), nil
	}

	// загрузка не привязана к отмене первого запроса: её ждут все, кто пришёл следом.
	// время загрузки ограничено таймаутом http клиента
	loadCtx := context.WithoutCancel(ctx)
	ch := s.loads.DoChan(snapshotKey, func() (interface{}, error) {
		var jobs []models.JobRecord
		err := s.fetch(loadCtx, s.baseURL+"/jobs", func(body []byte) error {
			decoded, err := decodeJobList(body)
			if err != nil {
				return fmt.Errorf("parse job list failed: %w", err)
			}
			jobs = decoded
			return nil
		})
		if err != nil {
			return nil, s.handleError(loadCtx, err)
		}

		s.remember(snapshotKey, jobs)
		s.log.Debug("job list fetched", s.log.Args("source", s.name, "jobs", len(jobs)))
		return jobs, nil
	})

	var v interface{}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		v = res.Val
	}

	return cloneJobs(v.([]models.JobRecord)), nil
}

// GetJob - одна вакансия: сначала из снимка, затем из API
func (s *RemoteSource) GetJob(ctx context.Context, id models.JobID) (models.JobRecord, error) {
	if cached, ok := s.cached(snapshotKey); ok {
		for _, job := range cached.([]models.JobRecord) {
			if job.ID == id {
				return job, nil
			}
		}
	}

	var job models.JobRecord
	err := s.fetch(ctx, s.baseURL+"/jobs/"+url.PathEscape(string(id)), func(body []byte) error {
		var item remoteJob
		if err := json.Unmarshal(body, &item); err != nil {
			return fmt.Errorf("parse job failed: %w", err)
		}
		job = item.toDomain()
		return nil
	})
	if err != nil {
		if isNotFound(err) {
			return models.JobRecord{}, fmt.Errorf("%w: %s", ErrJobNotFound, id)
		}
		return models.JobRecord{}, s.handleError(ctx, err)
	}

	return job, nil
}

// SuggestLocations - подсказки локаций от API; порядок API сохраняется, повторы убираются
func (s *RemoteSource) SuggestLocations(ctx context.Context, prefix string, limit int) ([]models.Location, error) {
	out := make([]models.Location, 0)
	prefix = strings.TrimSpace(prefix)
	if prefix == "" || limit <= 0 {
		return out, nil
	}

	key := locationsKeyPref + strings.ToLower(prefix)
	if cached, ok := s.cached(key); ok {
		return truncate(cached.([]models.Location), limit), nil
	}

	var found []models.Location
	err := s.fetch(ctx, s.baseURL+"/locations?q="+url.QueryEscape(prefix), func(body []byte) error {
		var items []remoteLocation
		if err := json.Unmarshal(body, &items); err != nil {
			return fmt.Errorf("parse locations failed: %w", err)
		}
		found = make([]models.Location, 0, len(items))
		for _, item := range items {
			if item.ID == "" {
				continue
			}
			found = append(found, models.Location{ID: string(item.ID), Name: item.Name})
		}
		return nil
	})
	if err != nil {
		return nil, s.handleError(ctx, err)
	}

	found = locations.Merge(found)
	s.remember(key, found)

	return truncate(found, limit), nil
}

// общий путь запроса к API: circuit breaker -> семафор -> rate limiter -> GET -> parse
func (s *RemoteSource) fetch(ctx context.Context, apiURL string, parse func([]byte) error) error {
	return s.circuitBreaker.Execute(func() error {
		if err := s.acquireSemaphore(ctx); err != nil {
			return err
		}
		defer s.releaseSemaphore()

		if err := s.rateLimiter.Wait(ctx); err != nil {
			return err
		}

		resp, err := s.executeRequest(ctx, apiURL)
		if err != nil {
			return err
		}
		defer s.drainAndClose(resp)

		if err := s.checkResponseStatus(resp); err != nil {
			return err
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read response failed: %w", err)
		}

		return parse(body)
	})
}

// метод проверки доступности семафора
func (s *RemoteSource) acquireSemaphore(ctx context.Context) error {
	timer := time.NewTimer(semaphoreTimeout)
	defer timer.Stop()

	select {
	case s.semaphore <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("context canceled while waiting for semaphore: %w", ctx.Err())
	case <-timer.C:
		return fmt.Errorf("semaphore timeout: %s API is busy", s.name)
	}
}

// метод освобождения семафора
func (s *RemoteSource) releaseSemaphore() {
	<-s.semaphore
}

// метод для выполнения HTTP запроса через клиент
func (s *RemoteSource) executeRequest(ctx context.Context, apiURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		req.Header.Set("X-API-Key", s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	return resp, nil
}

// дренирование и закрытие тела ответа с лимитом, чтобы соединение вернулось в пул
func (s *RemoteSource) drainAndClose(resp *http.Response) {
	_, _ = io.CopyN(io.Discard, resp.Body, maxBodySlurp)
	_ = resp.Body.Close()
}

// метод проверки статуса ответа на запрос к API
func (s *RemoteSource) checkResponseStatus(resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &statusError{code: resp.StatusCode, body: strings.TrimSpace(string(body))}
}

func isNotFound(err error) bool {
	var se *statusError
	return errors.As(err, &se) && se.code == http.StatusNotFound
}

// разбор ошибки запроса: открытый circuit breaker или отказ API -> ErrSourceUnavailable.
// ошибки контекста возвращаются как есть, только если отменён или истёк контекст вызывающего;
// таймаут http клиента - отказ API
func (s *RemoteSource) handleError(ctx context.Context, err error) error {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) || errors.Is(err, circuitbreaker.ErrTooManyRequests) {
		total, success, failures := s.circuitBreaker.GetStats()
		s.log.Warn("job source circuit breaker open", s.log.Args(
			"source", s.name, "total", total, "success", success, "failures", failures))
		return fmt.Errorf("%w: %s is temporarily unavailable (circuit breaker open)", ErrSourceUnavailable, s.name)
	}
	if ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return err
	}
	s.log.Error("job source request failed", s.log.Args("source", s.name, "error", err.Error()))
	return fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, s.name, err)
}

func (s *RemoteSource) cached(key string) (interface{}, bool) {
	if s.snapshot == nil {
		return nil, false
	}
	return s.snapshot.Get(key)
}

func (s *RemoteSource) remember(key string, value interface{}) {
	if s.snapshot != nil {
		s.snapshot.Set(key, value, gocache.DefaultExpiration)
	}
}

func cloneJobs(jobs []models.JobRecord) []models.JobRecord {
	out := make([]models.JobRecord, len(jobs))
	copy(out, jobs)
	return out
}

func truncate(locs []models.Location, limit int) []models.Location {
	n := min(len(locs), limit)
	out := make([]models.Location, n)
	copy(out, locs[:n])
	return out
}

// Проверка на этапе компиляции, что тип реализует интерфейс
var (
	_ listing_interfaces.JobSource      = (*RemoteSource)(nil)
	_ listing_interfaces.HealthReporter = (*RemoteSource)(nil)
)
