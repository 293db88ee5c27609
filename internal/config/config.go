// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for msync.
// It aggregates all sub-configurations and is populated by merging values
// from command-line overrides, environment variables, an optional JSON file,
// and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the daemon log file.
	App App `envPrefix:"APP_"`

	// Server holds the remote file-sync server address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds transfer policy: mode, network constraint, concurrency.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds intervals for the periodic background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from overrides and environment variables.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogPath is the rotated daemon log file. Empty means stdout only.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Server holds settings for the outbound connection to the remote
// file-sync server.
type Server struct {
	// BaseURL is the root URL of the remote server
	// (e.g. "http://192.168.2.2:3000"). Required.
	// Env: SERVER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-request timeout for non-streaming calls
	// (e.g. "30s", "1m"). Transfers stream and are not bounded by it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path used to open the task database
	// (e.g. "/var/lib/msync/msync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sync holds the transfer policy settings.
type Sync struct {
	// Mode selects allowed transfer directions:
	// "full", "download-only", "upload-only", or "disabled".
	// Env: SYNC_MODE
	Mode string `env:"MODE"`

	// NetworkType constrains transfers to "any" or "unmetered" links.
	// Env: SYNC_NETWORK_TYPE
	NetworkType string `env:"NETWORK_TYPE"`

	// MaxConcurrent caps simultaneous transfers; it throttles network and
	// local I/O pressure on the device.
	// Env: SYNC_MAX_CONCURRENT
	MaxConcurrent int `env:"MAX_CONCURRENT"`
}

// Workers holds scheduling settings for the periodic background jobs.
type Workers struct {
	// ScanInterval is how often every watched folder is re-scanned.
	// Env: WORKERS_SCAN_INTERVAL
	ScanInterval time.Duration `env:"SCAN_INTERVAL"`

	// DispatchInterval is how often the queue dispatcher is re-triggered.
	// Env: WORKERS_DISPATCH_INTERVAL
	DispatchInterval time.Duration `env:"DISPATCH_INTERVAL"`

	// DispatchPoll is the fixed backoff the dispatcher sleeps between
	// admission iterations while slots are busy.
	// Env: WORKERS_DISPATCH_POLL
	DispatchPoll time.Duration `env:"DISPATCH_POLL"`

	// CleanupInterval is how often terminal tasks are purged.
	// Env: WORKERS_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`

	// WatchDebounce is the quiet period applied to filesystem events
	// before they trigger an immediate scan of the changed folder.
	// Env: WORKERS_WATCH_DEBOUNCE
	WatchDebounce time.Duration `env:"WATCH_DEBOUNCE"`

	// WatchDisabled turns the filesystem event trigger off; the periodic
	// schedule still runs.
	// Env: WORKERS_WATCH_DISABLED
	WatchDisabled bool `env:"WATCH_DISABLED"`
}

// GetConfig loads, merges, and validates the msync configuration from all
// available sources in the following priority order (first non-zero value
// wins):
//  1. Command-line overrides supplied by the CLI layer
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
