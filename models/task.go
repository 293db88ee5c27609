package models

import "time"

// SyncDirection tells which way a file moves: from the device to the server
// or from the server to the device.
type SyncDirection string

const (
	DirectionUpload   SyncDirection = "UPLOAD"
	DirectionDownload SyncDirection = "DOWNLOAD"
)

// SyncStatus is the lifecycle state of a sync task. Allowed transitions are
// PENDING → IN_PROGRESS → {COMPLETED | FAILED}. CANCELLED exists for external
// overrides (folder removed, sync mode changed); in practice cancellation
// deletes the row rather than marking it.
type SyncStatus string

const (
	StatusPending    SyncStatus = "PENDING"
	StatusInProgress SyncStatus = "IN_PROGRESS"
	StatusCompleted  SyncStatus = "COMPLETED"
	StatusFailed     SyncStatus = "FAILED"
	StatusCancelled  SyncStatus = "CANCELLED"
)

// Terminal reports whether the status admits no further transitions.
func (s SyncStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// SyncTask is one unit of file-transfer work persisted in the local queue.
//
// At most one non-terminal task may exist per FilePath at a time; the store
// enforces this at insertion. StartedAt is set only on the transition to
// IN_PROGRESS, CompletedAt only on the transition to COMPLETED.
type SyncTask struct {
	// ID is the auto-assigned row identifier.
	ID int64 `json:"id"`

	// FolderPath is the watched folder the file belongs to.
	FolderPath string `json:"folder_path"`

	// FileName is the bare file name within FolderPath.
	FileName string `json:"file_name"`

	// FilePath is FolderPath joined with FileName; the dedup key.
	FilePath string `json:"file_path"`

	// Direction tells whether the task uploads or downloads.
	Direction SyncDirection `json:"direction"`

	// Status is the current lifecycle state.
	Status SyncStatus `json:"status"`

	// Priority orders pending tasks; higher runs first, ties break
	// oldest-first on CreatedAt.
	Priority int `json:"priority"`

	// FileSize is the size of the file in bytes as known at enqueue time.
	FileSize int64 `json:"file_size"`

	// ErrorMessage holds the last failure reason for FAILED tasks.
	ErrorMessage *string `json:"error_message,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// ExecutionHandle correlates an IN_PROGRESS row with the in-flight
	// transfer job that owns it.
	ExecutionHandle *string `json:"execution_handle,omitempty"`
}
