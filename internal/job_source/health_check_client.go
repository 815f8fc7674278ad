// реализация HealthClient для внешнего API вакансий
package job_source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"job_listing/configs"
	"job_listing/internal/listing_interfaces"
)

// HttpHealthCheckClient - проверка доступности внешнего API
type HttpHealthCheckClient struct {
	client  *http.Client  // клиент для реализации запроса
	timeout time.Duration // таймаут запроса healthCheck
}

func NewHttpHealthCheckClient(conf *configs.HealthCheckConfig) *HttpHealthCheckClient {
	if conf == nil {
		conf = configs.DefaultHealthCheckConfig()
	}

	return &HttpHealthCheckClient{
		client: &http.Client{
			Timeout: conf.TimeOut,
			Transport: &http.Transport{
				MaxConnsPerHost:       conf.MaxConnPerHost,
				MaxIdleConnsPerHost:   conf.MaxIdleConns,
				IdleConnTimeout:       conf.IdleConnTimeout,
				TLSHandshakeTimeout:   conf.TLSHandshakeTimeout,
				ExpectContinueTimeout: conf.ExpectContinueTimeout,
			},
		},
		timeout: conf.RequestTimeOut,
	}
}

// CheckHealth - GET на endpoint; здоров, если ответ 2xx. Возвращает время ответа
func (h *HttpHealthCheckClient) CheckHealth(ctx context.Context, endpoint string) (time.Duration, bool, error) {
	reqCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create health check request: %w", err)
	}
	req.Header.Set("User-Agent", "JobListingHealthCheck/1.0")

	resp, err := h.client.Do(req)
	reqDuration := time.Since(start)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return reqDuration, false, ctxErr
		}
		return reqDuration, false, fmt.Errorf("health request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return reqDuration, true, nil
	}
	return reqDuration, false, fmt.Errorf("health check failed with status: %d", resp.StatusCode)
}

// Проверка на этапе компиляции, что тип реализует интерфейс
var _ listing_interfaces.HealthClient = (*HttpHealthCheckClient)(nil)
