// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/morshues/msync/internal/adapter"
	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/internal/store"
	"github.com/morshues/msync/models"
)

const (
	// transferAttempts is the total attempt budget per transfer.
	transferAttempts = 3

	transferBackoffBase = 500 * time.Millisecond
)

type transferExecutor struct {
	tasks  store.TaskRepository
	server adapter.ServerAdapter
	local  LocalFileService

	backoffBase time.Duration

	logger *logger.Logger
}

func NewTransferExecutor(
	tasks store.TaskRepository,
	server adapter.ServerAdapter,
	local LocalFileService,
	log *logger.Logger,
) TransferExecutor {
	return &transferExecutor{
		tasks:       tasks,
		server:      server,
		local:       local,
		backoffBase: transferBackoffBase,
		logger:      log,
	}
}

// Execute implements [TransferExecutor]. Whatever happens, the task receives
// exactly one terminal status: COMPLETED, FAILED after the retry budget, or
// CANCELLED when the context is cut.
func (e *transferExecutor) Execute(ctx context.Context, task models.SyncTask) {
	log := e.logger.With().
		Int64("task_id", task.ID).
		Str("direction", string(task.Direction)).
		Str("file", task.FilePath).
		Logger()
	ctx = log.WithContext(ctx)

	var err error
	switch task.Direction {
	case models.DirectionUpload:
		err = e.upload(ctx, task)
	case models.DirectionDownload:
		err = e.download(ctx, task)
	default:
		err = fmt.Errorf("unknown direction %q", task.Direction)
	}

	// terminal marks survive a shutdown racing the transfer's last moment;
	// a cancelled context must not strand the row in IN_PROGRESS
	markCtx := context.WithoutCancel(ctx)

	switch {
	case err == nil:
		e.markTerminal(task.ID, e.tasks.MarkCompleted(markCtx, task.ID))
		log.Info().Msg("transfer completed")
	case errors.Is(err, context.Canceled) || ctx.Err() != nil:
		e.markTerminal(task.ID, e.tasks.MarkCancelled(markCtx, task.ID))
		log.Info().Msg("transfer cancelled")
	default:
		e.markTerminal(task.ID, e.tasks.MarkFailed(markCtx, task.ID, err.Error()))
		log.Err(err).Msg("transfer failed")
	}
}

func (e *transferExecutor) upload(ctx context.Context, task models.SyncTask) error {
	if _, err := os.Stat(task.FilePath); err != nil {
		// no point retrying a file that is gone
		return fmt.Errorf("%w: %s", ErrSourceFileMissing, task.FilePath)
	}

	return retry.Do(ctx, e.backoff(), func(ctx context.Context) error {
		f, err := os.Open(task.FilePath)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrSourceFileMissing, task.FilePath)
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return retry.RetryableError(fmt.Errorf("stat %s: %w", task.FilePath, err))
		}

		if err := e.server.UploadFile(ctx, task.FolderPath, task.FileName, f, info.ModTime()); err != nil {
			return retry.RetryableError(fmt.Errorf("upload %s: %w", task.FileName, err))
		}
		return nil
	})
}

func (e *transferExecutor) download(ctx context.Context, task models.SyncTask) error {
	return retry.Do(ctx, e.backoff(), func(ctx context.Context) error {
		result, err := e.server.DownloadFile(ctx, task.FolderPath, task.FileName)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("download %s: %w", task.FileName, err))
		}

		if err := e.local.WriteRemoteFile(ctx, task.FolderPath, task.FileName, result); err != nil {
			return retry.RetryableError(fmt.Errorf("store %s: %w", task.FileName, err))
		}
		return nil
	})
}

func (e *transferExecutor) backoff() retry.Backoff {
	return retry.WithMaxRetries(transferAttempts-1, retry.NewExponential(e.backoffBase))
}

func (e *transferExecutor) markTerminal(taskID int64, err error) {
	if err != nil {
		e.logger.Err(err).
			Int64("task_id", taskID).
			Msg("failed to record terminal task status")
	}
}
