// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/morshues/msync/internal/config"
	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/internal/service"
	"github.com/morshues/msync/internal/store"
	"github.com/morshues/msync/internal/workers"
)

// App holds the fully wired sync client. One-shot CLI commands use the
// services directly; Run starts the background workers for daemon mode.
type App struct {
	cfg      *config.StructuredConfig
	storages *store.Storages
	services *service.Services
	logger   *logger.Logger
}

func NewApp(cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	svcs, err := service.NewServices(cfg, storages, nil, nil, log)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	return &App{cfg: cfg, storages: storages, services: svcs, logger: log}, nil
}

// Services exposes the wired service layer to CLI commands.
func (a *App) Services() *service.Services {
	return a.services
}

// Run starts the background workers and blocks until the context is cancelled
// or a termination signal arrives. In-flight transfers are allowed to record
// their terminal status before Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// rows left IN_PROGRESS by an unclean exit would hold dispatcher slots
	// forever; requeue them before any worker runs
	recovered, err := a.services.Cleanup.RecoverOrphaned(ctx)
	if err != nil {
		return fmt.Errorf("recover interrupted transfers: %w", err)
	}
	if recovered > 0 {
		a.logger.Info().Int64("tasks", recovered).Msg("interrupted transfers requeued")
	}

	scheduler := workers.NewDispatchScheduler(a.services.Dispatcher, a.cfg.Workers.DispatchInterval, a.logger)
	a.services.BindDispatchTrigger(scheduler.Trigger)

	jobs := []workers.Worker{
		workers.NewPeriodic("scanner", a.cfg.Workers.ScanInterval, a.services.Scanner.ScanAll, a.logger),
		scheduler,
		workers.NewPeriodic("cleanup", a.cfg.Workers.CleanupInterval, func(ctx context.Context) error {
			_, err := a.services.Cleanup.Cleanup(ctx)
			return err
		}, a.logger),
	}
	if !a.cfg.Workers.WatchDisabled {
		jobs = append(jobs, workers.NewFolderWatcher(
			a.storages.FolderRepository,
			a.services.Scanner,
			a.services.Dispatcher,
			a.cfg.Workers.WatchDebounce,
			a.logger,
		))
	}

	pool := workers.NewWorkers(jobs...)
	pool.Run(ctx)
	a.logger.Info().Int("workers", len(jobs)).Msg("sync daemon started")

	<-ctx.Done()
	a.logger.Info().Msg("shutdown signal received, stopping workers...")

	pool.Wait()
	// running transfers finish marking their tasks before the process exits
	a.services.Enqueuer.Wait()

	a.logger.Info().Msg("sync daemon stopped")
	return nil
}
