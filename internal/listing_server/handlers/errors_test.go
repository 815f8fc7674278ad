package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"job_listing/configs"
	"job_listing/internal/domain/models"
	"job_listing/internal/job_query"
	"job_listing/internal/job_source"
	"job_listing/internal/paginator"
	"job_listing/shared/circuitbreaker"
	"job_listing/shared/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAPIError(t *testing.T) {
	_, criteriaErr := job_query.ParseCriteria(map[string]string{models.FilterKeyDate: "year"})

	tests := []struct {
		name   string
		err    error
		status int
		code   string
		field  string
	}{
		{"фильтр", criteriaErr, http.StatusBadRequest, "INVALID_FILTER", "date"},
		{"фильтр без деталей", fmt.Errorf("wrap: %w", job_query.ErrInvalidCriteria), http.StatusBadRequest, "INVALID_FILTER", ""},
		{"страница", fmt.Errorf("%w: page 9", paginator.ErrOutOfRange), http.StatusBadRequest, "PAGE_OUT_OF_RANGE", "page"},
		{"размер страницы", paginator.ErrInvalidConfig, http.StatusBadRequest, "INVALID_PAGINATION", "per_page"},
		{"нет вакансии", fmt.Errorf("%w: 42", job_source.ErrJobNotFound), http.StatusNotFound, "JOB_NOT_FOUND", ""},
		{"источник", fmt.Errorf("%w: remote", job_source.ErrSourceUnavailable), http.StatusServiceUnavailable, "SOURCE_UNAVAILABLE", ""},
		{"circuit breaker", circuitbreaker.ErrCircuitOpen, http.StatusServiceUnavailable, "SOURCE_UNAVAILABLE", ""},
		{"прочее", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, apiErr := ToAPIError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.field, apiErr.Field)
			assert.NotEmpty(t, apiErr.Message)
		})
	}
}

func TestToAPIErrorUpstreamTimeout(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(300 * time.Millisecond):
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(upstream.Close)

	conf := configs.DefaultSourceConfig().Remote
	conf.BaseURL = upstream.URL
	conf.Timeout = 50 * time.Millisecond
	src, err := job_source.NewRemoteSourceFromConfig(conf, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(src.Stop)

	_, err = src.ListJobs(context.Background())
	require.Error(t, err)

	status, apiErr := ToAPIError(err)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "SOURCE_UNAVAILABLE", apiErr.Code)
}
