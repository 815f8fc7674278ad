package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"job_listing/configs"
	"job_listing/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	for _, key := range []string{
		configs.ServerConfigEnv, configs.ListingConfigEnv, configs.SourceConfigEnv,
		configs.CacheConfigEnv, configs.HealthCheckConfigEnv,
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestInitDependenciesDefaults(t *testing.T) {
	clearConfigEnv(t)

	deps, err := InitDependencies(context.Background(), filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "static", deps.Source.Name())
	assert.Nil(t, deps.HealthClient)
	assert.NotNil(t, deps.ResultCache)
	assert.NotNil(t, deps.ListingHandler)

	jobs, err := deps.Querier.Query(context.Background(), models.FilterCriteria{})
	require.NoError(t, err)
	assert.Len(t, jobs, 12)

	deps.ListingHandler.ShutDown(context.Background())
}

func TestInitDependenciesWithoutCache(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()

	cachePath := filepath.Join(dir, "cache.yml")
	require.NoError(t, os.WriteFile(cachePath, []byte("backend: none\n"), 0o600))
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte(configs.CacheConfigEnv+"="+cachePath+"\n"), 0o600))

	deps, err := InitDependencies(context.Background(), envPath)
	require.NoError(t, err)
	assert.Nil(t, deps.ResultCache)
}

func TestInitDependenciesUnknownSource(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()

	sourcePath := filepath.Join(dir, "source.yml")
	require.NoError(t, os.WriteFile(sourcePath, []byte("type: ftp\n"), 0o600))
	t.Setenv(configs.SourceConfigEnv, sourcePath)

	_, err := InitDependencies(context.Background(), filepath.Join(dir, "missing.env"))
	assert.Error(t, err)
}
