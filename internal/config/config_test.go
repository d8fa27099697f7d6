package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
  port: 5432
  user: test
  password: test
  dbname: test_db
  sslmode: disable
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.API.PageSize)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, 3, cfg.API.Retry.MaxAttempts)
	assert.Equal(t, time.Second, cfg.API.Retry.InitialBackoff)
	assert.Equal(t, 30*time.Second, cfg.API.Retry.MaxBackoff)
	assert.Equal(t, 6*time.Hour, cfg.Sync.Interval)
	assert.Equal(t, 2*time.Hour, cfg.Sync.RunTimeout)
	assert.Equal(t, 2*time.Second, cfg.Sync.PageDelay)
	assert.Equal(t, 2*time.Second, cfg.Sync.JobDelay)
	assert.Equal(t, 4, cfg.Sync.DetailConcurrency)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "info", cfg.LogLevel)

	// The six standard categories come preconfigured.
	assert.Len(t, cfg.Jobs, 6)
	assert.Equal(t, "1000", cfg.Jobs[0].CategoryID)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "s3cret")

	path := writeConfig(t, `
database:
  host: localhost
  port: 5432
  user: test
  password: ${TEST_DB_PASSWORD}
  dbname: test_db
  sslmode: disable
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Contains(t, cfg.Database.DSN(), "password=s3cret")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestJobList(t *testing.T) {
	path := writeConfig(t, `
jobs:
  - category_id: "1001"
    name: 电视剧
  - category_id: "1000"
    name: 电影2024
    sync_type: year
    year: "2024"
    pay_type: "2"
    max_pages: 50
    score_delta: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	jobs := cfg.JobList()
	require.Len(t, jobs, 2)

	assert.Equal(t, "incremental", jobs[0].SyncType) // defaulted
	assert.False(t, jobs[0].Filtered())

	assert.Equal(t, "year", jobs[1].SyncType)
	assert.Equal(t, "2024", jobs[1].Year)
	assert.Equal(t, "2", jobs[1].PayType)
	assert.Equal(t, 50, jobs[1].MaxPages)
	assert.True(t, jobs[1].ScoreDelta)
	assert.True(t, jobs[1].Filtered())
}
