// описание и инициализация всех общих зависимостей
package core

import (
	"context"
	"fmt"
	"runtime"

	"job_listing/configs"
	"job_listing/internal/job_query"
	"job_listing/internal/job_source"
	"job_listing/internal/listing_interfaces"
	"job_listing/internal/listing_server/handlers"
	"job_listing/internal/listing_server/service"
	"job_listing/internal/result_cache"
	"job_listing/shared/inmemory_cache"
	"job_listing/shared/logger"
	sharedredis "job_listing/shared/redis"

	"github.com/pterm/pterm"
)

// ListingServiceDependencies содержит все общие зависимости
type ListingServiceDependencies struct {
	Config         *configs.JobListingConfig
	Log            *pterm.Logger
	Source         listing_interfaces.JobSource
	HealthClient   listing_interfaces.HealthClient
	Engine         *job_query.Engine
	ResultCache    listing_interfaces.ResultCache
	Querier        *result_cache.CachedQuerier
	ListingHandler *handlers.ListingHandler
}

// InitDependencies инициализирует зависимости сервиса списка вакансий.
// envPath - путь к .env (пусто - ".env" в рабочей директории)
func InitDependencies(ctx context.Context, envPath string) (*ListingServiceDependencies, error) {
	currentMaxProcs := runtime.GOMAXPROCS(-1)
	fmt.Printf("Текущее значение GOMAXPROCS: %d\n", currentMaxProcs)

	// Получаем конфигурацию
	conf, err := configs.LoadConfig(envPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(conf.Log, nil)
	if !conf.EnvLoaded {
		log.Info("no .env file found, using process environment")
	}

	var stoppers []func()

	// источник вакансий выбирается по типу из конфига
	factory := job_source.NewDefaultFactory(conf.Source, log)
	source, err := factory.Create(job_source.SourceType(conf.Source.Type))
	if err != nil {
		return nil, fmt.Errorf("failed to create job source: %w", err)
	}

	// health check нужен только внешнему источнику
	var healthClient listing_interfaces.HealthClient
	if remote, ok := source.(*job_source.RemoteSource); ok {
		healthClient = job_source.NewHttpHealthCheckClient(conf.HealthCheck)
		stoppers = append(stoppers, remote.Stop)
	}

	engine := job_query.NewEngine(source)

	resultCache, stopCache, err := newResultCache(ctx, conf, log)
	if err != nil {
		return nil, err
	}
	if stopCache != nil {
		stoppers = append(stoppers, stopCache)
	}

	querier := result_cache.NewCachedQuerier(engine, resultCache, source.Name(), conf.Cache.TTL, log)

	// создаём сервис списка вакансий
	listingService := service.NewListingService(querier, source, healthClient, conf.Listing, log, stoppers...)

	// создаём хэндлер
	listingHandler := handlers.NewListingHandler(listingService, log)

	log.Info("dependencies initialized", log.Args(
		"source", source.Name(),
		"cache", conf.Cache.Backend,
		"gomaxprocs", currentMaxProcs,
	))

	return &ListingServiceDependencies{
		Config:         conf,
		Log:            log,
		Source:         source,
		HealthClient:   healthClient,
		Engine:         engine,
		ResultCache:    resultCache,
		Querier:        querier,
		ListingHandler: listingHandler,
	}, nil
}

// кэш результатов по backend из конфига; второе значение - функция остановки (может быть nil)
func newResultCache(ctx context.Context, conf *configs.JobListingConfig, log *pterm.Logger) (listing_interfaces.ResultCache, func(), error) {
	switch conf.Cache.Backend {
	case configs.CacheBackendInmemory:
		store, err := inmemory_cache.NewInmemoryShardedCache(conf.Cache.NumOfShards, conf.Cache.CleanUp)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create result cache: %w", err)
		}
		return result_cache.NewInmemoryResultCache(store), store.Stop, nil

	case configs.CacheBackendRedis:
		adapter, err := sharedredis.NewRedisCacheAdapter(ctx, conf.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect result cache to redis: %w", err)
		}
		stop := func() {
			if err := adapter.Close(); err != nil {
				log.Warn("redis close failed", log.Args("error", err.Error()))
			}
		}
		return result_cache.NewRedisResultCache(adapter), stop, nil

	default:
		// без кэша каждый запрос идёт в источник
		return nil, nil, nil
	}
}
