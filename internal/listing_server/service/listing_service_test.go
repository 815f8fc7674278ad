package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"job_listing/configs"
	"job_listing/internal/domain/models"
	"job_listing/internal/job_query"
	"job_listing/internal/paginator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

type stubSource struct {
	jobs []models.JobRecord
}

func (s stubSource) ListJobs(context.Context) ([]models.JobRecord, error) { return s.jobs, nil }

func (s stubSource) GetJob(_ context.Context, id models.JobID) (models.JobRecord, error) {
	for _, j := range s.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return models.JobRecord{}, fmt.Errorf("job %s not found", id)
}

func (s stubSource) SuggestLocations(_ context.Context, _ string, limit int) ([]models.Location, error) {
	out := []models.Location{{ID: "ica", Name: "Ica"}, {ID: "pisco", Name: "Pisco"}}
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s stubSource) Name() string { return "stub" }

func newTestService(n int) *ListingService {
	jobs := make([]models.JobRecord, 0, n)
	for i := 1; i <= n; i++ {
		jobType := models.JobTypePartTime
		if i%2 == 1 {
			jobType = models.JobTypeFullTime
		}
		jobs = append(jobs, models.JobRecord{ID: models.JobID(fmt.Sprint(i)), Title: "Vacante", Type: jobType, PostedAt: testNow})
	}
	src := stubSource{jobs: jobs}
	engine := job_query.NewEngine(src, job_query.WithClock(func() time.Time { return testNow }))
	return NewListingService(engine, src, nil, configs.DefaultListingConfig(), nil)
}

func TestListJobs(t *testing.T) {
	svc := newTestService(12)
	ctx := context.Background()

	page, criteria, err := svc.ListJobs(ctx, map[string]string{"jobType": "full_time"}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, models.JobTypeFullTime, criteria.JobType)
	assert.Equal(t, 2, page.State.CurrentPage)
	assert.Equal(t, 5, page.State.ItemsPerPage, "per_page 0 means the configured default")
	assert.Equal(t, 6, page.State.TotalItems)
	require.Len(t, page.Items, 1)
	assert.Equal(t, models.JobID("11"), page.Items[0].ID)

	_, _, err = svc.ListJobs(ctx, nil, 3, 0)
	require.NoError(t, err)

	_, _, err = svc.ListJobs(ctx, map[string]string{"jobType": "full_time"}, 3, 0)
	assert.ErrorIs(t, err, paginator.ErrOutOfRange)

	_, _, err = svc.ListJobs(ctx, nil, 0, 0)
	assert.ErrorIs(t, err, paginator.ErrOutOfRange)

	_, _, err = svc.ListJobs(ctx, nil, 1, 101)
	assert.ErrorIs(t, err, paginator.ErrInvalidConfig)

	_, _, err = svc.ListJobs(ctx, map[string]string{"date": "year"}, 1, 0)
	assert.ErrorIs(t, err, job_query.ErrInvalidCriteria)
}

func TestListJobsEmptyResult(t *testing.T) {
	svc := newTestService(3)

	page, _, err := svc.ListJobs(context.Background(), map[string]string{"query": "astronauta"}, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
}

func TestSuggestLocations(t *testing.T) {
	svc := newTestService(1)
	ctx := context.Background()

	locs, err := svc.SuggestLocations(ctx, "ic", 10)
	require.NoError(t, err)
	assert.NotNil(t, locs)
	assert.Empty(t, locs)

	locs, err = svc.SuggestLocations(ctx, "ica", 1)
	require.NoError(t, err)
	assert.Len(t, locs, 1)

	locs, err = svc.SuggestLocations(ctx, "ica", -5)
	require.NoError(t, err)
	assert.Len(t, locs, 2, "non-positive limit falls back to the configured maximum")
}

func TestHealthWithoutUpstream(t *testing.T) {
	status := newTestService(1).Health(context.Background())
	assert.Equal(t, "stub", status.Source)
	assert.False(t, status.UpstreamChecked)
	assert.True(t, status.Healthy())
}
