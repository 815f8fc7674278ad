// описание http сервера списка вакансий
package listing_server

import (
	"context"
	"net/http"
	"time"

	"job_listing/internal/listing_server/dto"
	"job_listing/internal/listing_server/handlers"
	"job_listing/shared/config"
	"job_listing/shared/logger"
	"job_listing/shared/middleware"
	"job_listing/shared/toolkit"

	"github.com/gin-gonic/gin"
	"github.com/pterm/pterm"
)

// через сколько забывать лимитер неактивного клиента
const clientIdleTTL = 10 * time.Minute

// структура сервера списка вакансий
type ListingServer struct {
	httpServer *http.Server
	router     *gin.Engine
	config     *config.ServerConfig
	log        *pterm.Logger
	Handler    *handlers.ListingHandler
}

// Конструктор для сервера: роутер, middleware и маршруты
func NewListingServer(ctx context.Context, conf *config.ServerConfig, handler *handlers.ListingHandler, log *pterm.Logger) (*ListingServer, error) {
	if log == nil {
		log = logger.Nop()
	}
	if conf.GinMode != "" {
		gin.SetMode(conf.GinMode)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	router.Use(gin.Recovery())
	router.Use(toolkit.RequestIDMiddleware())
	router.Use(logger.GinLogger(log))
	router.Use(toolkit.CORSMiddleware(conf.AllowedOrigins))
	if conf.ClientRPS > 0 {
		router.Use(toolkit.NewClientRateLimiter(conf.ClientRPS, conf.ClientBurst, clientIdleTTL).Middleware())
	}

	s := &ListingServer{
		router:  router,
		config:  conf,
		log:     log,
		Handler: handler,
	}
	s.SetUpRoutes()

	return s, nil
}

// Метод для маршрутизации сервера
func (s *ListingServer) SetUpRoutes() {
	s.router.GET("/hello", s.Handler.EchoListingServer) // тестовый ендпоинт
	s.router.GET("/health", s.Handler.Health)
	s.router.GET("/jobs", middleware.ValidateQueryMiddleware(&dto.JobsQuery{}), s.Handler.ListJobs)
	s.router.GET("/jobs/:id", s.Handler.GetJob)
	s.router.GET("/locations", middleware.ValidateQueryMiddleware(&dto.LocationsQuery{}), s.Handler.SuggestLocations)
	s.router.GET("/filters", s.Handler.Filters)
}

// Router - http.Handler сервера (для тестов и встраивания)
func (s *ListingServer) Router() http.Handler {
	return s.router
}

// Метод для запуска сервера
func (s *ListingServer) Run() error {
	s.httpServer = &http.Server{
		Addr:           s.config.Addr(),
		Handler:        s.router,
		ReadTimeout:    s.config.ReadTimeout,
		WriteTimeout:   s.config.WriteTimeout,
		IdleTimeout:    s.config.IdleTimeout,
		MaxHeaderBytes: s.config.MaxHeaderBytes,
	}

	s.log.Info("starting HTTP server", s.log.Args("addr", s.config.Addr()))
	return s.httpServer.ListenAndServe()
}

// Метод для graceful shutdown
func (s *ListingServer) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	s.log.Info("server shutdown completed")
	return nil
}
