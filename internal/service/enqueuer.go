// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/internal/store"
	"github.com/morshues/msync/models"
)

// transferJob is one running transfer tracked by the enqueuer. The tags on it
// let policy changes target running work in bulk.
type transferJob struct {
	handle     string
	taskID     int64
	folderPath string
	direction  models.SyncDirection
	cancel     context.CancelFunc
}

type enqueuer struct {
	tasks store.TaskRepository

	// executorFactory is resolved lazily: the executor needs the adapter,
	// which the wiring builds after the enqueuer exists.
	executorFactory func() TransferExecutor

	mu   sync.Mutex
	jobs map[string]*transferJob
	wg   sync.WaitGroup

	logger *logger.Logger
}

func NewEnqueuer(tasks store.TaskRepository, executorFactory func() TransferExecutor, log *logger.Logger) Enqueuer {
	return &enqueuer{
		tasks:           tasks,
		executorFactory: executorFactory,
		jobs:            make(map[string]*transferJob),
		logger:          log,
	}
}

// Enqueue implements [Enqueuer]. The task is marked IN_PROGRESS with a fresh
// execution handle before its goroutine starts, so the queue never shows a
// running transfer without a handle to cancel it by.
func (e *enqueuer) Enqueue(ctx context.Context, task models.SyncTask) (string, error) {
	executor := e.executorFactory()
	if executor == nil {
		return "", fmt.Errorf("no transfer executor attached")
	}

	handle := uuid.NewString()
	if err := e.tasks.MarkStarted(ctx, task.ID, handle); err != nil {
		return "", fmt.Errorf("mark task started: %w", err)
	}

	jobCtx, cancel := context.WithCancel(ctx)
	job := &transferJob{
		handle:     handle,
		taskID:     task.ID,
		folderPath: task.FolderPath,
		direction:  task.Direction,
		cancel:     cancel,
	}

	e.mu.Lock()
	e.jobs[handle] = job
	e.mu.Unlock()

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer cancel()
		defer e.remove(handle)

		executor.Execute(jobCtx, task)
	}()

	e.logger.Debug().
		Int64("task_id", task.ID).
		Str("handle", handle).
		Str("direction", string(task.Direction)).
		Msg("transfer started")

	return handle, nil
}

// ActiveCount implements [Enqueuer].
func (e *enqueuer) ActiveCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.jobs)
}

// CancelTask implements [Enqueuer].
func (e *enqueuer) CancelTask(taskID int64) {
	e.cancelMatching(func(job *transferJob) bool {
		return job.taskID == taskID
	})
}

// CancelFolder implements [Enqueuer].
func (e *enqueuer) CancelFolder(folderPath string) {
	e.cancelMatching(func(job *transferJob) bool {
		return job.folderPath == folderPath
	})
}

// CancelUploads implements [Enqueuer].
func (e *enqueuer) CancelUploads() {
	e.cancelMatching(func(job *transferJob) bool {
		return job.direction == models.DirectionUpload
	})
}

// CancelDownloads implements [Enqueuer].
func (e *enqueuer) CancelDownloads() {
	e.cancelMatching(func(job *transferJob) bool {
		return job.direction == models.DirectionDownload
	})
}

// CancelAll implements [Enqueuer].
func (e *enqueuer) CancelAll() {
	e.cancelMatching(func(*transferJob) bool { return true })
}

// Wait implements [Enqueuer].
func (e *enqueuer) Wait() {
	e.wg.Wait()
}

func (e *enqueuer) cancelMatching(match func(*transferJob) bool) {
	e.mu.Lock()
	var cancels []context.CancelFunc
	for _, job := range e.jobs {
		if match(job) {
			cancels = append(cancels, job.cancel)
		}
	}
	e.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}

	if len(cancels) > 0 {
		e.logger.Info().
			Int("count", len(cancels)).
			Msg("transfers cancelled")
	}
}

func (e *enqueuer) remove(handle string) {
	e.mu.Lock()
	delete(e.jobs, handle)
	e.mu.Unlock()
}
