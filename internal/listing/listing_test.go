package listing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"job_listing/internal/domain/models"
	"job_listing/internal/job_query"
	"job_listing/internal/paginator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticLister []models.JobRecord

func (l staticLister) ListJobs(context.Context) ([]models.JobRecord, error) {
	return l, nil
}

var testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

// 12 вакансий, из них 7 на полный день (позиции 1,2,4,5,7,9,11)
func twelveJobs() []models.JobRecord {
	fullTime := map[int]bool{1: true, 2: true, 4: true, 5: true, 7: true, 9: true, 11: true}
	jobs := make([]models.JobRecord, 0, 12)
	for i := 1; i <= 12; i++ {
		jobType := models.JobTypePartTime
		if fullTime[i] {
			jobType = models.JobTypeFullTime
		}
		jobs = append(jobs, models.JobRecord{
			ID:       models.JobID(fmt.Sprint(i)),
			Title:    fmt.Sprintf("Vacante %d", i),
			Type:     jobType,
			PostedAt: testNow.Add(-time.Duration(i) * time.Hour),
		})
	}
	return jobs
}

func newEngine(jobs []models.JobRecord) *job_query.Engine {
	return job_query.NewEngine(staticLister(jobs), job_query.WithClock(func() time.Time { return testNow }))
}

func pageIDs(p Page) []models.JobID {
	out := make([]models.JobID, 0, len(p.Items))
	for _, j := range p.Items {
		out = append(out, j.ID)
	}
	return out
}

func TestEndToEndFullTimePagination(t *testing.T) {
	session, err := NewSession(newEngine(twelveJobs()), 5, 5)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := session.ApplyCriteria(ctx, models.FilterCriteria{JobType: models.JobTypeFullTime})
	require.NoError(t, err)
	assert.Equal(t, 7, first.State.TotalItems)
	assert.Equal(t, 2, first.TotalPages)
	assert.Equal(t, []models.JobID{"1", "2", "4", "5", "7"}, pageIDs(first))

	second, err := session.GoToPage(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []models.JobID{"9", "11"}, pageIDs(second))

	_, err = session.GoToPage(ctx, 3)
	assert.ErrorIs(t, err, paginator.ErrOutOfRange)
	assert.Equal(t, 2, session.CurrentPage(), "failed transition must not change the page")
}

func TestSessionResetsPageOnFilterChange(t *testing.T) {
	session, err := NewSession(newEngine(twelveJobs()), 2, 5)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = session.Current(ctx)
	require.NoError(t, err)
	_, err = session.GoToPage(ctx, 4)
	require.NoError(t, err)

	page, err := session.SetQuery(ctx, "vacante")
	require.NoError(t, err)
	assert.Equal(t, 1, page.State.CurrentPage)

	_, err = session.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, session.CurrentPage())

	page, err = session.RemoveFilter(ctx, models.FilterKeyQuery)
	require.NoError(t, err)
	assert.Equal(t, 1, page.State.CurrentPage)
	assert.Empty(t, session.Criteria().Query)
}

func TestSessionNavigation(t *testing.T) {
	session, err := NewSession(newEngine(twelveJobs()), 5, 5)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = session.Prev(ctx)
	assert.ErrorIs(t, err, paginator.ErrOutOfRange)

	page, err := session.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, page.State.CurrentPage)

	page, err = session.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, page.State.CurrentPage)
	assert.Equal(t, []models.JobID{"11", "12"}, pageIDs(page))

	_, err = session.Next(ctx)
	assert.ErrorIs(t, err, paginator.ErrOutOfRange)
}

func TestSessionClearFiltersKeepsQuery(t *testing.T) {
	session, err := NewSession(newEngine(twelveJobs()), 5, 5)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = session.ApplyCriteria(ctx, models.FilterCriteria{Query: "vacante", JobType: models.JobTypePartTime})
	require.NoError(t, err)

	page, err := session.ClearFilters(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FilterCriteria{Query: "vacante"}, session.Criteria())
	assert.Equal(t, 12, page.State.TotalItems)
}

func TestSessionEmptyResult(t *testing.T) {
	session, err := NewSession(newEngine(twelveJobs()), 5, 5)
	require.NoError(t, err)

	page, err := session.SetQuery(context.Background(), "astronauta")
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Layout.Pages)
	assert.True(t, page.Layout.Hidden)
}

func TestNewSessionInvalidConfig(t *testing.T) {
	_, err := NewSession(newEngine(nil), 0, 5)
	assert.ErrorIs(t, err, paginator.ErrInvalidConfig)

	_, err = NewSession(newEngine(nil), 5, 0)
	assert.ErrorIs(t, err, paginator.ErrInvalidConfig)
}

func TestPaginate(t *testing.T) {
	jobs := twelveJobs()

	t.Run("первая страница", func(t *testing.T) {
		page, err := Paginate(jobs, 1, 5, 5)
		require.NoError(t, err)
		assert.Len(t, page.Items, 5)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, "Página 1 de 3", page.Layout.Summary)
	})

	t.Run("пустой набор - страница 1 допустима", func(t *testing.T) {
		page, err := Paginate(nil, 1, 5, 5)
		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Empty(t, page.Layout.Summary)
	})

	t.Run("ошибки", func(t *testing.T) {
		_, err := Paginate(jobs, 4, 5, 5)
		assert.ErrorIs(t, err, paginator.ErrOutOfRange)

		_, err = Paginate(jobs, 1, 0, 5)
		assert.ErrorIs(t, err, paginator.ErrInvalidConfig)

		_, err = Paginate(jobs, 1, 5, 0)
		assert.ErrorIs(t, err, paginator.ErrInvalidConfig)
	})

	t.Run("страница не разделяет память с входом", func(t *testing.T) {
		page, err := Paginate(jobs, 1, 5, 5)
		require.NoError(t, err)
		page.Items[0].Title = "changed"
		assert.Equal(t, "Vacante 1", jobs[0].Title)
	})
}

func TestBuildLayout(t *testing.T) {
	tests := []struct {
		name   string
		page   int
		total  int
		expect Layout
	}{
		{
			name: "начало", page: 1, total: 10,
			expect: Layout{
				Pages: []int{1, 2, 3, 4, 5}, ShowLast: true, TrailingEllipsis: true,
				HasNext: true, NextPage: 2, Summary: "Página 1 de 10",
			},
		},
		{
			name: "середина", page: 5, total: 10,
			expect: Layout{
				Pages: []int{3, 4, 5, 6, 7}, ShowFirst: true, LeadingEllipsis: true,
				ShowLast: true, TrailingEllipsis: true,
				HasPrev: true, PrevPage: 4, HasNext: true, NextPage: 6, Summary: "Página 5 de 10",
			},
		},
		{
			name: "окно примыкает к первой", page: 4, total: 10,
			expect: Layout{
				Pages: []int{2, 3, 4, 5, 6}, ShowFirst: true,
				ShowLast: true, TrailingEllipsis: true,
				HasPrev: true, PrevPage: 3, HasNext: true, NextPage: 5, Summary: "Página 4 de 10",
			},
		},
		{
			name: "конец", page: 10, total: 10,
			expect: Layout{
				Pages: []int{6, 7, 8, 9, 10}, ShowFirst: true, LeadingEllipsis: true,
				HasPrev: true, PrevPage: 9, Summary: "Página 10 de 10",
			},
		},
		{
			name: "одна страница", page: 1, total: 1,
			expect: Layout{Pages: []int{1}, Hidden: true, Summary: "Página 1 de 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := paginator.VisibleWindow(tt.total, tt.page, 5)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, buildLayout(window, tt.page, tt.total))
		})
	}
}

func TestActiveFilters(t *testing.T) {
	active := ActiveFilters(models.FilterCriteria{
		JobType:  models.JobTypeFullTime,
		Location: models.LocationIca,
		Date:     models.DatePostedWeek,
	})

	require.Len(t, active, 3)
	assert.Equal(t, ActiveFilter{Key: "jobType", Value: "FULL_TIME", KeyLabel: "Tipo de trabajo", ValueLabel: "Tiempo completo"}, active[0])
	assert.Equal(t, "Ubicación", active[1].KeyLabel)
	assert.Equal(t, "Última semana", active[2].ValueLabel)

	assert.Empty(t, ActiveFilters(models.FilterCriteria{}))
}

func TestFilterCatalog(t *testing.T) {
	catalog := FilterCatalog()
	require.Len(t, catalog, 5)
	assert.Equal(t, "jobType", catalog[0].Key)
	assert.Len(t, catalog[0].Options, 4)
	assert.Equal(t, FilterOption{Value: "3001+", Label: "3,001+"}, catalog[1].Options[3])
}
