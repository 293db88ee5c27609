package service

import (
	"context"
	"fmt"

	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/internal/store"
	"github.com/morshues/msync/models"
)

type cleanupService struct {
	tasks  store.TaskRepository
	logger *logger.Logger
}

func NewCleanupService(tasks store.TaskRepository, log *logger.Logger) CleanupService {
	return &cleanupService{tasks: tasks, logger: log}
}

// Cleanup implements [CleanupService]. Every terminal row is purged; history
// lives in the daemon log, not the queue.
func (c *cleanupService) Cleanup(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	deleted, err := c.tasks.DeleteByStatus(ctx,
		models.StatusCompleted, models.StatusFailed, models.StatusCancelled)
	if err != nil {
		return 0, fmt.Errorf("purge terminal tasks: %w", err)
	}

	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Msg("terminal tasks purged")
	}

	return deleted, nil
}

// RecoverOrphaned implements [CleanupService]. A task can only be IN_PROGRESS
// while its executor goroutine lives, so at startup any such row is a leftover
// of an unclean exit and goes back to PENDING.
func (c *cleanupService) RecoverOrphaned(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	reset, err := c.tasks.ResetInProgress(ctx)
	if err != nil {
		return 0, fmt.Errorf("requeue interrupted tasks: %w", err)
	}

	if reset > 0 {
		log.Info().Int64("requeued", reset).Msg("interrupted transfers recovered")
	}

	return reset, nil
}
