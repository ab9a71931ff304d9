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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMustLoadPath(t *testing.T) {
	path := writeConfig(t, `
env: prod
http:
  address: ":9090"
  base_url: "https://rooms.example.com"
database:
  dsn: "host=db user=u dbname=d"
storage:
  root: "/var/lib/roomadmin"
  max_upload_size: 5242880
pagination:
  default_page_size: 10
  max_page_size: 50
pdf:
  render_timeout: 10s
`)

	cfg := MustLoadPath(path)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, "https://rooms.example.com", cfg.HTTP.BaseURL)
	assert.Equal(t, "host=db user=u dbname=d", cfg.Database.DSN)
	assert.Equal(t, "/var/lib/roomadmin", cfg.Storage.Root)
	assert.Equal(t, int64(5242880), cfg.Storage.MaxUploadSize)
	assert.Equal(t, 10, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, 50, cfg.Pagination.MaxPageSize)
	assert.Equal(t, 10*time.Second, cfg.PDF.RenderTimeout)
}

func TestMustLoadPathDefaults(t *testing.T) {
	path := writeConfig(t, `
env: local
database:
  dsn: "host=localhost"
`)

	cfg := MustLoadPath(path)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "http://localhost:8080", cfg.HTTP.BaseURL)
	assert.Equal(t, "static", cfg.Storage.Root)
	assert.Equal(t, int64(10<<20), cfg.Storage.MaxUploadSize)
	assert.Equal(t, 20, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, 100, cfg.Pagination.MaxPageSize)
	assert.Equal(t, 30*time.Second, cfg.PDF.RenderTimeout)
}

func TestMustLoadPathMissingFile(t *testing.T) {
	assert.Panics(t, func() {
		MustLoadPath(filepath.Join(t.TempDir(), "missing.yaml"))
	})
}
