package models

import (
	"fmt"
	"time"
)

// SyncMode selects which transfer directions are allowed. Switching modes
// cancels in-flight transfers of the disallowed direction(s) and deletes
// their queued tasks.
type SyncMode string

const (
	SyncModeFull         SyncMode = "full"
	SyncModeDownloadOnly SyncMode = "download-only"
	SyncModeUploadOnly   SyncMode = "upload-only"
	SyncModeDisabled     SyncMode = "disabled"
)

// AllowsUpload reports whether upload tasks may be created and run.
func (m SyncMode) AllowsUpload() bool {
	return m == SyncModeFull || m == SyncModeUploadOnly
}

// AllowsDownload reports whether download tasks may be created and run.
func (m SyncMode) AllowsDownload() bool {
	return m == SyncModeFull || m == SyncModeDownloadOnly
}

// ParseSyncMode validates a user-supplied mode string.
func ParseSyncMode(s string) (SyncMode, error) {
	switch SyncMode(s) {
	case SyncModeFull, SyncModeDownloadOnly, SyncModeUploadOnly, SyncModeDisabled:
		return SyncMode(s), nil
	}
	return "", fmt.Errorf("unknown sync mode %q", s)
}

// NetworkType constrains which links transfers may use.
type NetworkType string

const (
	NetworkAny       NetworkType = "any"
	NetworkUnmetered NetworkType = "unmetered"
)

// StatusReport is a point-in-time snapshot of the sync engine for display.
type StatusReport struct {
	Mode        SyncMode             `json:"mode"`
	NetworkType NetworkType          `json:"network_type"`
	Counts      map[SyncStatus]int64 `json:"counts"`
	Folders     []WatchedFolder      `json:"folders"`
	GeneratedAt time.Time            `json:"generated_at"`
}
