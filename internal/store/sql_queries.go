// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/morshues/msync/models"
)

const (
	insertSyncTask = `
		INSERT INTO sync_tasks (
			folder_path,
			file_name,
			file_path,
			direction,
			status,
			priority,
			file_size,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	getSyncTask = `
		SELECT
			id,
			folder_path,
			file_name,
			file_path,
			direction,
			status,
			priority,
			file_size,
			error_message,
			created_at,
			started_at,
			completed_at,
			execution_handle
		FROM sync_tasks
		WHERE id = ?;`

	getPendingTasks = `
		SELECT
			id,
			folder_path,
			file_name,
			file_path,
			direction,
			status,
			priority,
			file_size,
			error_message,
			created_at,
			started_at,
			completed_at,
			execution_handle
		FROM sync_tasks
		WHERE status = 'PENDING'
		ORDER BY priority DESC, created_at ASC
		LIMIT ?;`

	getActiveFilePaths = `
		SELECT file_path
		FROM sync_tasks
		WHERE status IN ('PENDING', 'IN_PROGRESS');`

	countTasksByStatus = `
		SELECT COUNT(*)
		FROM sync_tasks
		WHERE status = ?;`

	markTaskStarted = `
		UPDATE sync_tasks SET
			status           = 'IN_PROGRESS',
			started_at       = ?,
			execution_handle = ?
		WHERE id = ?;`

	markTaskCompleted = `
		UPDATE sync_tasks SET
			status        = 'COMPLETED',
			completed_at  = ?,
			error_message = NULL
		WHERE id = ?;`

	markTaskFailed = `
		UPDATE sync_tasks SET
			status        = 'FAILED',
			completed_at  = ?,
			error_message = ?
		WHERE id = ?;`

	markTaskCancelled = `
		UPDATE sync_tasks SET
			status       = 'CANCELLED',
			completed_at = ?
		WHERE id = ?;`

	resetInProgressTasks = `
		UPDATE sync_tasks SET
			status           = 'PENDING',
			started_at       = NULL,
			execution_handle = NULL
		WHERE status = 'IN_PROGRESS';`
)

var taskColumns = []string{
	"id",
	"folder_path",
	"file_name",
	"file_path",
	"direction",
	"status",
	"priority",
	"file_size",
	"error_message",
	"created_at",
	"started_at",
	"completed_at",
	"execution_handle",
}

// buildSelectTasksByStatusQuery builds a SELECT over sync_tasks restricted to
// the given statuses. With no statuses the query matches every task.
func buildSelectTasksByStatusQuery(_ context.Context, statuses ...models.SyncStatus) (string, []any, error) {
	builder := sq.Select(taskColumns...).
		From("sync_tasks").
		OrderBy("priority DESC", "created_at ASC")

	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, status := range statuses {
			values = append(values, string(status))
		}
		builder = builder.Where(sq.Eq{"status": values})
	}

	return builder.ToSql()
}

// buildDeleteTasksByStatusQuery builds a DELETE over sync_tasks restricted to
// the given statuses.
func buildDeleteTasksByStatusQuery(_ context.Context, statuses ...models.SyncStatus) (string, []any, error) {
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, string(status))
	}

	return sq.Delete("sync_tasks").
		Where(sq.Eq{"status": values}).
		ToSql()
}

// buildDeleteTasksByDirectionQuery builds a DELETE of every task with the
// given transfer direction, regardless of status.
func buildDeleteTasksByDirectionQuery(_ context.Context, direction models.SyncDirection) (string, []any, error) {
	return sq.Delete("sync_tasks").
		Where(sq.Eq{"direction": string(direction)}).
		ToSql()
}

// buildDeleteTasksByFolderQuery builds a DELETE of every task belonging to
// the given watched folder.
func buildDeleteTasksByFolderQuery(_ context.Context, folderPath string) (string, []any, error) {
	return sq.Delete("sync_tasks").
		Where(sq.Eq{"folder_path": folderPath}).
		ToSql()
}
