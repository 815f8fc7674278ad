// описание хэндлеров сервера списка вакансий
package handlers

import (
	"context"
	"net/http"
	"strings"

	"job_listing/internal/domain/models"
	"job_listing/internal/listing_server/converters"
	"job_listing/internal/listing_server/dto"
	"job_listing/internal/listing_server/service"
	"job_listing/shared/logger"
	"job_listing/shared/middleware"

	"github.com/gin-gonic/gin"
	"github.com/pterm/pterm"
)

// структура хэндлера сервера списка вакансий
type ListingHandler struct {
	service service.ListingServiceInterface
	log     *pterm.Logger
}

// конструктор для слоя хэндлеров
func NewListingHandler(service service.ListingServiceInterface, log *pterm.Logger) *ListingHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ListingHandler{
		service: service,
		log:     log,
	}
}

// метод проверки работоспособности слоя хэндлеров
func (h *ListingHandler) EchoListingServer(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from job listing server!"})
}

// метод хэндлера для остановки сервисов
func (h *ListingHandler) ShutDown(ctx context.Context) {
	h.service.StopServices(ctx)
}

// GET /jobs - страница отфильтрованных вакансий
func (h *ListingHandler) ListJobs(c *gin.Context) {
	req, ok := validated[*dto.JobsQuery](c)
	if !ok {
		return
	}

	page, criteria, err := h.service.ListJobs(c.Request.Context(), req.Params(), req.Page, req.PerPage)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, converters.PageToDTO(page, criteria, h.service.Now()))
}

// GET /jobs/:id - одна вакансия
func (h *ListingHandler) GetJob(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": APIError{Code: "INVALID_QUERY", Message: "job id is required", Field: "id"}})
		return
	}

	job, err := h.service.GetJob(c.Request.Context(), models.JobID(id))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, converters.JobToDTO(job, h.service.Now()))
}

// GET /locations?q= - подсказки локаций
func (h *ListingHandler) SuggestLocations(c *gin.Context) {
	req, ok := validated[*dto.LocationsQuery](c)
	if !ok {
		return
	}

	locs, err := h.service.SuggestLocations(c.Request.Context(), req.Q, req.Limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, converters.LocationsToDTO(locs))
}

// GET /filters - все фильтры и их значения с подписями
func (h *ListingHandler) Filters(c *gin.Context) {
	c.JSON(http.StatusOK, converters.FilterCatalogToDTO(h.service.FilterCatalog()))
}

// GET /health - состояние сервиса и источника вакансий
func (h *ListingHandler) Health(c *gin.Context) {
	status := h.service.Health(c.Request.Context())

	resp := dto.HealthResponse{Status: "ok", Source: status.Source}
	if status.UpstreamChecked {
		upstream := &dto.UpstreamHealth{
			Healthy:   status.UpstreamHealthy,
			LatencyMs: status.UpstreamLatency.Milliseconds(),
		}
		if status.UpstreamError != nil {
			upstream.Error = status.UpstreamError.Error()
		}
		resp.Upstream = upstream
	}

	code := http.StatusOK
	if !status.Healthy() {
		resp.Status = "degraded"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, resp)
}

// ответ с ошибкой: 5xx пишем в лог с request id
func (h *ListingHandler) respondError(c *gin.Context, err error) {
	code, apiErr := ToAPIError(err)
	if code >= http.StatusInternalServerError {
		h.log.Error("request failed", h.log.Args(
			"path", c.FullPath(),
			"request_id", c.GetString("request_id"),
			"error", err.Error(),
		))
	}
	c.JSON(code, gin.H{"error": apiErr})
}

// запрос, который положил в контекст ValidateQueryMiddleware
func validated[T any](c *gin.Context) (T, bool) {
	var zero T
	raw, exists := c.Get(middleware.ValidatedQueryKey)
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": APIError{Code: "INVALID_QUERY", Message: "Invalid request data"}})
		return zero, false
	}
	req, ok := raw.(T)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": APIError{Code: "INTERNAL_ERROR", Message: "Server configuration error"}})
		return zero, false
	}
	return req, true
}
