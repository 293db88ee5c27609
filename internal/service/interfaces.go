// SPDX-License-Identifier: Apache-2.0

// Package service contains the sync engine: credential management, folder
// scanning, queue dispatch, transfer execution, and the settings operations
// that reshape the queue when the user changes sync policy.
package service

import (
	"context"

	"github.com/morshues/msync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces TokenService

// AuthAPI is the slice of the server adapter the token service needs. The
// full [adapter.ServerAdapter] satisfies it.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	Refresh(ctx context.Context, req models.RefreshRequest) (models.RefreshResponse, error)
}

// TokenService owns the bearer credential lifecycle: interactive login,
// transparent refresh ahead of expiry, and session teardown. It satisfies
// [adapter.TokenSource].
type TokenService interface {
	Token(ctx context.Context) (string, error)
	Invalidate(ctx context.Context) error

	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error

	// SetAuthAPI attaches the login/refresh client. The adapter is built
	// with the token service as its token source, so the dependency is
	// closed after both exist.
	SetAuthAPI(auth AuthAPI)
}

// LocalFileService abstracts the watched-folder filesystem: flat listings for
// the diff call and writing downloaded streams back to disk.
type LocalFileService interface {
	// ListFolder returns the plain files directly under folderPath. Dotfiles
	// and subdirectories are skipped; sync is intentionally non-recursive.
	ListFolder(folderPath string) ([]models.FileEntry, error)

	// WriteRemoteFile streams remote.Body into folderPath/fileName, applies
	// the remote modification time when known, and fires the media-index
	// hook. The body is consumed and closed exactly once.
	WriteRemoteFile(ctx context.Context, folderPath, fileName string, remote models.RemoteFileResult) error
}

// MediaScanner is notified after a downloaded file lands on disk so platform
// media indexes can pick it up. The default implementation only logs.
type MediaScanner interface {
	Scan(ctx context.Context, filePath, contentType string)
}

// NetworkChecker reports whether the current link satisfies a transfer
// constraint. The default implementation treats every link as unmetered.
type NetworkChecker interface {
	Allowed(networkType models.NetworkType) bool
}

// ScannerService produces sync tasks by diffing watched folders against the
// server.
type ScannerService interface {
	// ScanFolder diffs one folder and enqueues the resulting tasks. Returns
	// the number of tasks actually inserted after deduplication.
	ScanFolder(ctx context.Context, folderPath string) (int, error)

	// ScanAll scans every watched folder. A failure in one folder is logged
	// and does not abort the others.
	ScanAll(ctx context.Context) error

	// Preview returns the server-computed diff for one folder without
	// creating any tasks. Used for interactive folder inspection.
	Preview(ctx context.Context, folderPath string) (models.CompareFolderResponse, error)
}

// DispatcherService drains the PENDING queue into running transfers while
// honouring the concurrency cap.
type DispatcherService interface {
	// Dispatch runs one admission loop: it starts pending tasks whenever
	// slots are free and returns once the queue is empty, sync is disabled,
	// or ctx is cancelled.
	Dispatch(ctx context.Context) error
}

// Enqueuer tracks running transfers as cancellable in-process jobs, tagged by
// direction, folder, and task so policy changes can target them in bulk.
type Enqueuer interface {
	// Enqueue marks the task IN_PROGRESS and starts its transfer in the
	// background, returning the execution handle stored with the task.
	Enqueue(ctx context.Context, task models.SyncTask) (string, error)

	// ActiveCount returns the number of transfers currently running.
	ActiveCount() int

	CancelTask(taskID int64)
	CancelFolder(folderPath string)
	CancelUploads()
	CancelDownloads()
	CancelAll()

	// Wait blocks until every running transfer goroutine has exited.
	Wait()
}

// TransferExecutor performs a single task's upload or download, including the
// retry budget, and writes exactly one terminal status for the task.
type TransferExecutor interface {
	Execute(ctx context.Context, task models.SyncTask)
}

// CleanupService purges terminal task rows and repairs the queue after an
// unclean shutdown.
type CleanupService interface {
	// Cleanup deletes COMPLETED, FAILED, and CANCELLED tasks and returns
	// how many rows were removed.
	Cleanup(ctx context.Context) (int64, error)

	// RecoverOrphaned requeues IN_PROGRESS tasks whose executor died with
	// the process. Run once at startup, before any worker dispatches.
	RecoverOrphaned(ctx context.Context) (int64, error)
}

// SettingsService holds the runtime sync policy and applies the queue
// reshaping each policy change requires.
type SettingsService interface {
	SyncMode() models.SyncMode
	NetworkType() models.NetworkType

	// SetSyncMode switches the transfer policy. Directions the new mode
	// disallows have their running transfers cancelled and their tasks
	// deleted; if the new mode allows any direction a rescan is triggered.
	SetSyncMode(ctx context.Context, mode models.SyncMode) error

	SetNetworkType(networkType models.NetworkType)

	// AddFolder registers a directory, scans it immediately, and triggers a
	// dispatch so its first transfers start without waiting for the ticker.
	AddFolder(ctx context.Context, path string) (models.WatchedFolder, error)

	// RemoveFolder cancels the folder's running transfers, deletes its
	// tasks, and unregisters it.
	RemoveFolder(ctx context.Context, path string) error

	Folders(ctx context.Context) ([]models.WatchedFolder, error)
	Status(ctx context.Context) (models.StatusReport, error)
}
