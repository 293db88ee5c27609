package store

import (
	"context"
	"time"

	"github.com/morshues/msync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TaskRepository is the low-level local queue of pending and historical
// transfer work. All reads and writes go through the single SQLite file.
type TaskRepository interface {
	// AddTasks inserts the given tasks, skipping any whose file_path already
	// has a task in a non-terminal status. Returns the tasks actually
	// inserted, with their assigned ids.
	AddTasks(ctx context.Context, tasks ...models.SyncTask) ([]models.SyncTask, error)

	// GetPendingTasks returns up to limit PENDING tasks ordered by priority
	// descending, then creation time ascending.
	GetPendingTasks(ctx context.Context, limit int) ([]models.SyncTask, error)

	GetTask(ctx context.Context, id int64) (models.SyncTask, error)
	TasksByStatus(ctx context.Context, statuses ...models.SyncStatus) ([]models.SyncTask, error)
	CountByStatus(ctx context.Context, status models.SyncStatus) (int64, error)

	// MarkStarted transitions a task to IN_PROGRESS, recording the execution
	// handle and start time. Marking an id that no longer exists is a no-op.
	MarkStarted(ctx context.Context, id int64, executionHandle string) error

	// MarkCompleted transitions a task to COMPLETED with a completion time.
	// Marking an id that no longer exists is a no-op.
	MarkCompleted(ctx context.Context, id int64) error

	// MarkFailed transitions a task to FAILED, recording the error message
	// and completion time. Marking an id that no longer exists is a no-op.
	MarkFailed(ctx context.Context, id int64, errorMessage string) error

	// MarkCancelled transitions a task to CANCELLED. Marking an id that no
	// longer exists is a no-op.
	MarkCancelled(ctx context.Context, id int64) error

	// ResetInProgress returns all IN_PROGRESS tasks to PENDING, clearing
	// their start metadata. Run at startup to recover rows orphaned by an
	// unclean shutdown. Returns the number of rows reset.
	ResetInProgress(ctx context.Context) (int64, error)

	DeleteByStatus(ctx context.Context, statuses ...models.SyncStatus) (int64, error)
	DeleteByDirection(ctx context.Context, direction models.SyncDirection) (int64, error)
	DeleteByFolder(ctx context.Context, folderPath string) (int64, error)
}

// FolderRepository persists the set of directories the user opted into sync.
type FolderRepository interface {
	GetAll(ctx context.Context) ([]models.WatchedFolder, error)
	Add(ctx context.Context, path string) (models.WatchedFolder, error)
	Remove(ctx context.Context, path string) error

	// TouchScanned records the time the scanner last completed a full pass
	// over the folder.
	TouchScanned(ctx context.Context, path string, scannedAt time.Time) error
}

// SessionRepository stores the single local authentication session and the
// stable device identifier used on login.
type SessionRepository interface {
	// Get returns the stored session or [ErrSessionNotFound].
	Get(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, session models.Session) error
	Clear(ctx context.Context) error

	// GetOrCreateDeviceID returns the persistent device identifier,
	// generating and storing a new one on first call.
	GetOrCreateDeviceID(ctx context.Context) (string, error)
}
