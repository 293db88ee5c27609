// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()
	for k, v := range envVars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LOG_PATH": "/var/log/msync.log",

		"SERVER_BASE_URL":        "http://sync.local:3000",
		"SERVER_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/var/lib/msync/msync.db",

		"SYNC_MODE":           "download-only",
		"SYNC_NETWORK_TYPE":   "unmetered",
		"SYNC_MAX_CONCURRENT": "5",

		"WORKERS_SCAN_INTERVAL":     "10m",
		"WORKERS_DISPATCH_INTERVAL": "5m",
		"WORKERS_DISPATCH_POLL":     "2s",
		"WORKERS_CLEANUP_INTERVAL":  "12h",
		"WORKERS_WATCH_DEBOUNCE":    "3s",
		"WORKERS_WATCH_DISABLED":    "true",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/var/log/msync.log", cfg.App.LogPath)

	assert.Equal(t, "http://sync.local:3000", cfg.Server.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "/var/lib/msync/msync.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "download-only", cfg.Sync.Mode)
	assert.Equal(t, "unmetered", cfg.Sync.NetworkType)
	assert.Equal(t, 5, cfg.Sync.MaxConcurrent)

	assert.Equal(t, 10*time.Minute, cfg.Workers.ScanInterval)
	assert.Equal(t, 5*time.Minute, cfg.Workers.DispatchInterval)
	assert.Equal(t, 2*time.Second, cfg.Workers.DispatchPoll)
	assert.Equal(t, 12*time.Hour, cfg.Workers.CleanupInterval)
	assert.Equal(t, 3*time.Second, cfg.Workers.WatchDebounce)
	assert.True(t, cfg.Workers.WatchDisabled)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"SERVER_BASE_URL": "http://sync.local:3000",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://sync.local:3000", cfg.Server.BaseURL)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Sync.MaxConcurrent)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"WORKERS_SCAN_INTERVAL": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
