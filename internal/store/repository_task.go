package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/models"
)

type taskRepository struct {
	*DB
	logger *logger.Logger
}

func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	return &taskRepository{
		DB:     db,
		logger: logger,
	}
}

// AddTasks inserts tasks and deduplicates against the live queue inside a
// single transaction: a candidate whose file_path already has a PENDING or
// IN_PROGRESS task is silently skipped. Terminal tasks for the same path do
// not block re-enqueueing.
func (t *taskRepository) AddTasks(ctx context.Context, tasks ...models.SyncTask) ([]models.SyncTask, error) {
	log := logger.FromContext(ctx)

	if len(tasks) == 0 {
		return nil, nil
	}

	tx, err := t.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.AddTasks").
			Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	activePaths, err := activeFilePathsTx(ctx, tx)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.AddTasks").
			Msg("failed to query active file paths")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	now := time.Now().UTC()
	inserted := make([]models.SyncTask, 0, len(tasks))

	for _, task := range tasks {
		if _, busy := activePaths[task.FilePath]; busy {
			continue
		}

		if task.Status == "" {
			task.Status = models.StatusPending
		}
		if task.CreatedAt.IsZero() {
			task.CreatedAt = now
		}

		res, execErr := tx.ExecContext(ctx, insertSyncTask,
			task.FolderPath,
			task.FileName,
			task.FilePath,
			task.Direction,
			task.Status,
			task.Priority,
			task.FileSize,
			task.CreatedAt,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "taskRepository.AddTasks").
				Str("file_path", task.FilePath).
				Msg("failed to insert sync task")
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		id, idErr := res.LastInsertId()
		if idErr != nil {
			log.Err(idErr).
				Str("func", "taskRepository.AddTasks").
				Str("file_path", task.FilePath).
				Msg("failed to read inserted task id")
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, idErr)
		}
		task.ID = id

		// a second candidate for the same path within one batch is a dup too
		activePaths[task.FilePath] = struct{}{}
		inserted = append(inserted, task)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "taskRepository.AddTasks").
			Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return inserted, nil
}

func activeFilePathsTx(ctx context.Context, tx *sql.Tx) (map[string]struct{}, error) {
	rows, err := tx.QueryContext(ctx, getActiveFilePaths)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paths := make(map[string]struct{})
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths[path] = struct{}{}
	}

	return paths, rows.Err()
}

func (t *taskRepository) GetPendingTasks(ctx context.Context, limit int) ([]models.SyncTask, error) {
	log := logger.FromContext(ctx)

	rows, err := t.DB.QueryContext(ctx, getPendingTasks, limit)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.GetPendingTasks").
			Int("limit", limit).
			Msg("failed to query pending tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (t *taskRepository) GetTask(ctx context.Context, id int64) (models.SyncTask, error) {
	log := logger.FromContext(ctx)

	row := t.DB.QueryRowContext(ctx, getSyncTask, id)

	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncTask{}, ErrTaskNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.GetTask").
			Int64("task_id", id).
			Msg("failed to scan sync task row")
		return models.SyncTask{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return task, nil
}

func (t *taskRepository) TasksByStatus(ctx context.Context, statuses ...models.SyncStatus) ([]models.SyncTask, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTasksByStatusQuery(ctx, statuses...)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.TasksByStatus").
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := t.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.TasksByStatus").
			Msg("failed to query tasks by status")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (t *taskRepository) CountByStatus(ctx context.Context, status models.SyncStatus) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	err := t.DB.QueryRowContext(ctx, countTasksByStatus, status).Scan(&count)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.CountByStatus").
			Str("status", string(status)).
			Msg("failed to count tasks")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (t *taskRepository) MarkStarted(ctx context.Context, id int64, executionHandle string) error {
	return t.markTask(ctx, "taskRepository.MarkStarted", markTaskStarted,
		time.Now().UTC(), executionHandle, id)
}

func (t *taskRepository) MarkCompleted(ctx context.Context, id int64) error {
	return t.markTask(ctx, "taskRepository.MarkCompleted", markTaskCompleted,
		time.Now().UTC(), id)
}

func (t *taskRepository) MarkFailed(ctx context.Context, id int64, errorMessage string) error {
	return t.markTask(ctx, "taskRepository.MarkFailed", markTaskFailed,
		time.Now().UTC(), errorMessage, id)
}

func (t *taskRepository) MarkCancelled(ctx context.Context, id int64) error {
	return t.markTask(ctx, "taskRepository.MarkCancelled", markTaskCancelled,
		time.Now().UTC(), id)
}

// markTask runs a status-transition UPDATE. An id that matches no row is not
// an error: the task may have been deleted by a mode switch or folder removal
// while its transfer was still running.
func (t *taskRepository) markTask(ctx context.Context, caller string, query string, args ...any) error {
	log := logger.FromContext(ctx)

	_, err := t.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to update sync task status")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ResetInProgress returns every IN_PROGRESS row to PENDING. After an unclean
// exit no executor goroutine survives, so such rows would otherwise hold
// dispatcher slots and block their file paths forever.
func (t *taskRepository) ResetInProgress(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := t.DB.ExecContext(ctx, resetInProgressTasks)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.ResetInProgress").
			Msg("failed to reset in-progress tasks")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	reset, err := res.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.ResetInProgress").
			Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return reset, nil
}

func (t *taskRepository) DeleteByStatus(ctx context.Context, statuses ...models.SyncStatus) (int64, error) {
	log := logger.FromContext(ctx)

	if len(statuses) == 0 {
		return 0, nil
	}

	query, args, err := buildDeleteTasksByStatusQuery(ctx, statuses...)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.DeleteByStatus").
			Msg("failed to build delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return t.deleteTasks(ctx, "taskRepository.DeleteByStatus", query, args...)
}

func (t *taskRepository) DeleteByDirection(ctx context.Context, direction models.SyncDirection) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTasksByDirectionQuery(ctx, direction)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.DeleteByDirection").
			Msg("failed to build delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return t.deleteTasks(ctx, "taskRepository.DeleteByDirection", query, args...)
}

func (t *taskRepository) DeleteByFolder(ctx context.Context, folderPath string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTasksByFolderQuery(ctx, folderPath)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.DeleteByFolder").
			Msg("failed to build delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return t.deleteTasks(ctx, "taskRepository.DeleteByFolder", query, args...)
}

func (t *taskRepository) deleteTasks(ctx context.Context, caller string, query string, args ...any) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := t.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to delete sync tasks")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.SyncTask, error) {
	var (
		task            models.SyncTask
		errorMessage    sql.NullString
		startedAt       sql.NullTime
		completedAt     sql.NullTime
		executionHandle sql.NullString
	)

	err := row.Scan(
		&task.ID,
		&task.FolderPath,
		&task.FileName,
		&task.FilePath,
		&task.Direction,
		&task.Status,
		&task.Priority,
		&task.FileSize,
		&errorMessage,
		&task.CreatedAt,
		&startedAt,
		&completedAt,
		&executionHandle,
	)
	if err != nil {
		return models.SyncTask{}, err
	}

	if errorMessage.Valid {
		task.ErrorMessage = &errorMessage.String
	}
	if startedAt.Valid {
		task.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		task.CompletedAt = &completedAt.Time
	}
	if executionHandle.Valid {
		task.ExecutionHandle = &executionHandle.String
	}

	return task, nil
}

func scanTasks(rows *sql.Rows) ([]models.SyncTask, error) {
	var tasks []models.SyncTask

	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sync task rows: %w", err)
	}

	return tasks, nil
}
