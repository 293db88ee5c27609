package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "log_path": "/var/log/msync.log" },
		"server": {
			"base_url": "http://sync.local:3000",
			"request_timeout": "30s"
		},
		"storage": {
			"db": { "dsn": "/var/lib/msync/msync.db" }
		},
		"sync": {
			"mode": "upload-only",
			"network_type": "any",
			"max_concurrent": 4
		},
		"workers": {
			"scan_interval": "20m",
			"dispatch_interval": "10m",
			"dispatch_poll": "500ms",
			"cleanup_interval": "24h",
			"watch_debounce": "5s"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/var/log/msync.log", cfg.App.LogPath)
	assert.Equal(t, "http://sync.local:3000", cfg.Server.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/var/lib/msync/msync.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "upload-only", cfg.Sync.Mode)
	assert.Equal(t, 4, cfg.Sync.MaxConcurrent)
	assert.Equal(t, 20*time.Minute, cfg.Workers.ScanInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Workers.DispatchPoll)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations may also be raw nanosecond numbers.
	jsonBody := `{"workers": {"dispatch_poll": 1000000000}}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Workers.DispatchPoll)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": `), 0o600))

	_, err := parseJSON(p)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}
