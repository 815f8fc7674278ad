package job_source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"job_listing/configs"
	"job_listing/internal/domain/models"
	"job_listing/shared/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallJobsYAML = `
jobs:
  - id: 10
    title: Vendedor
    company: {name: Tiendas Mass, location: "Ica"}
    type: FULL_TIME
  - id: "a-7"
    title: Cajero
    company: {name: Caja Ica, location: "Pueblo Nuevo, Chincha"}
    type: PART_TIME
`

func TestLoadStaticSource(t *testing.T) {
	src, err := LoadStaticSource("test", []byte(smallJobsYAML), []models.Location{{ID: "pisco", Name: "Pisco"}})
	require.NoError(t, err)
	ctx := context.Background()

	jobs, err := src.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, models.JobID("10"), jobs[0].ID)
	assert.Equal(t, models.JobID("a-7"), jobs[1].ID)

	// изменение копии не затрагивает источник
	jobs[0].Title = "changed"
	again, _ := src.ListJobs(ctx)
	assert.Equal(t, "Vendedor", again[0].Title)

	job, err := src.GetJob(ctx, "a-7")
	require.NoError(t, err)
	assert.Equal(t, "Cajero", job.Title)

	_, err = src.GetJob(ctx, "404")
	assert.ErrorIs(t, err, ErrJobNotFound)

	locs, err := src.SuggestLocations(ctx, "pue", 10)
	require.NoError(t, err)
	assert.Equal(t, []models.Location{{ID: "pueblo-nuevo-chincha", Name: "Pueblo Nuevo, Chincha"}}, locs)

	locs, err = src.SuggestLocations(ctx, "pis", 10)
	require.NoError(t, err)
	assert.Equal(t, []models.Location{{ID: "pisco", Name: "Pisco"}}, locs)
}

func TestLoadStaticSourceErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"повтор id", "jobs:\n  - id: 1\n  - id: \"1\"\n"},
		{"пустой id", "jobs:\n  - title: x\n"},
		{"битый yaml", "jobs: [\n"},
		{"id не скаляр", "jobs:\n  - id: [1, 2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadStaticSource("test", []byte(tt.data), nil)
			assert.ErrorIs(t, err, ErrInvalidData)
		})
	}
}

func TestLoadStaticSourceEmpty(t *testing.T) {
	src, err := LoadStaticSource("empty", []byte("jobs: []\n"), nil)
	require.NoError(t, err)

	jobs, err := src.ListJobs(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestNewStaticSourceEmbedded(t *testing.T) {
	conf := configs.DefaultSourceConfig()
	src, err := NewStaticSource(conf, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "static", src.Name())

	jobs, err := src.ListJobs(context.Background())
	require.NoError(t, err)
	assert.Len(t, jobs, 12)
	for _, job := range jobs {
		assert.NotEmpty(t, job.Title, "job %s", job.ID)
		assert.False(t, job.PostedAt.IsZero(), "job %s", job.ID)
	}
}

func TestNewStaticSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yml")
	require.NoError(t, os.WriteFile(path, []byte(smallJobsYAML), 0o600))

	conf := configs.DefaultSourceConfig()
	conf.Static.DataFile = path
	conf.Static.Name = "archivo"

	src, err := NewStaticSource(conf, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "archivo", src.Name())

	conf.Static.DataFile = filepath.Join(t.TempDir(), "missing.yml")
	_, err = NewStaticSource(conf, logger.Nop())
	assert.Error(t, err)
}

func TestStaticSourceCanceledContext(t *testing.T) {
	src, err := LoadStaticSource("test", []byte(smallJobsYAML), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = src.ListJobs(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewStaticSourceRebasesSampleDates(t *testing.T) {
	ctx := context.Background()

	conf := configs.DefaultSourceConfig()
	src, err := NewStaticSource(conf, logger.Nop())
	require.NoError(t, err)

	job, err := src.GetJob(ctx, "10")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(-3*time.Hour-30*time.Minute), job.PostedAt, time.Minute,
		"newest sample posting stays 3h30m before now")

	conf.Static.RebaseSampleDates = false
	src, err = NewStaticSource(conf, logger.Nop())
	require.NoError(t, err)

	job, err = src.GetJob(ctx, "10")
	require.NoError(t, err)
	assert.True(t, job.PostedAt.Equal(time.Date(2025, 3, 15, 13, 30, 0, 0, time.UTC)))
}
