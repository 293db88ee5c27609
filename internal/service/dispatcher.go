// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/internal/store"
	"github.com/morshues/msync/models"
)

type dispatcherService struct {
	tasks    store.TaskRepository
	enqueuer Enqueuer
	settings SettingsService
	network  NetworkChecker

	maxConcurrent int
	pollInterval  time.Duration

	logger *logger.Logger
}

func NewDispatcherService(
	tasks store.TaskRepository,
	enq Enqueuer,
	settings SettingsService,
	network NetworkChecker,
	maxConcurrent int,
	pollInterval time.Duration,
	log *logger.Logger,
) DispatcherService {
	if maxConcurrent <= 0 {
		maxConcurrent = 3
	}
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &dispatcherService{
		tasks:         tasks,
		enqueuer:      enq,
		settings:      settings,
		network:       network,
		maxConcurrent: maxConcurrent,
		pollInterval:  pollInterval,
		logger:        log,
	}
}

// Dispatch implements [DispatcherService]. Each iteration re-reads the
// IN_PROGRESS count from the store rather than trusting a local counter, so
// transfers finished by other components free slots immediately. The loop
// ends when nothing is pending; while pending work waits on busy slots it
// polls.
func (d *dispatcherService) Dispatch(ctx context.Context) error {
	log := logger.FromContext(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		mode := d.settings.SyncMode()
		if mode == models.SyncModeDisabled {
			return nil
		}
		if !d.network.Allowed(d.settings.NetworkType()) {
			log.Debug().Msg("network constraint not satisfied, skipping dispatch")
			return nil
		}

		// the empty-queue check comes before the slot check: with nothing
		// pending the run must end even while every slot is busy
		pending, err := d.tasks.CountByStatus(ctx, models.StatusPending)
		if err != nil {
			return fmt.Errorf("count pending tasks: %w", err)
		}
		if pending == 0 {
			return nil
		}

		active, err := d.tasks.CountByStatus(ctx, models.StatusInProgress)
		if err != nil {
			return fmt.Errorf("count running tasks: %w", err)
		}

		slots := d.maxConcurrent - int(active)
		if slots <= 0 {
			if err := d.sleep(ctx); err != nil {
				return err
			}
			continue
		}

		batch, err := d.tasks.GetPendingTasks(ctx, slots)
		if err != nil {
			return fmt.Errorf("fetch pending tasks: %w", err)
		}
		if len(batch) == 0 {
			return nil
		}

		for _, task := range batch {
			if !d.allowedByMode(mode, task.Direction) {
				continue
			}

			// a start failure is isolated to its task; the batch goes on
			if _, enqErr := d.enqueuer.Enqueue(ctx, task); enqErr != nil {
				log.Err(enqErr).
					Int64("task_id", task.ID).
					Msg("failed to start transfer")
				if markErr := d.tasks.MarkFailed(ctx, task.ID, enqErr.Error()); markErr != nil {
					log.Err(markErr).
						Int64("task_id", task.ID).
						Msg("failed to record start failure")
				}
			}
		}

		if err := d.sleep(ctx); err != nil {
			return err
		}
	}
}

func (d *dispatcherService) allowedByMode(mode models.SyncMode, direction models.SyncDirection) bool {
	switch direction {
	case models.DirectionUpload:
		return mode.AllowsUpload()
	case models.DirectionDownload:
		return mode.AllowsDownload()
	default:
		return false
	}
}

func (d *dispatcherService) sleep(ctx context.Context) error {
	timer := time.NewTimer(d.pollInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
