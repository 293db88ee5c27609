// SPDX-License-Identifier: Apache-2.0

package config

import (
	"net/url"
	"strings"

	"github.com/morshues/msync/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.BaseURL == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if u, err := url.Parse(cfg.Server.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidServerConfigs
	}

	if _, err := models.ParseSyncMode(cfg.Sync.Mode); err != nil {
		return ErrInvalidSyncConfigs
	}
	switch models.NetworkType(cfg.Sync.NetworkType) {
	case models.NetworkAny, models.NetworkUnmetered:
	default:
		return ErrInvalidSyncConfigs
	}
	if cfg.Sync.MaxConcurrent <= 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Workers.ScanInterval <= 0 ||
		cfg.Workers.DispatchInterval <= 0 ||
		cfg.Workers.DispatchPoll <= 0 ||
		cfg.Workers.CleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
