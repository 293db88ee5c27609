// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/internal/store"
	"github.com/morshues/msync/models"
)

type settingsService struct {
	tasks    store.TaskRepository
	folders  store.FolderRepository
	enqueuer Enqueuer

	mu          sync.RWMutex
	mode        models.SyncMode
	networkType models.NetworkType

	// bound after construction; see Bind
	scanner         ScannerService
	triggerDispatch func()

	logger *logger.Logger
}

// NewSettingsService builds the runtime policy holder seeded with the
// configured mode and network constraint. Bind must be called before mode
// switches can trigger rescans.
func NewSettingsService(
	tasks store.TaskRepository,
	folders store.FolderRepository,
	enq Enqueuer,
	mode models.SyncMode,
	networkType models.NetworkType,
	log *logger.Logger,
) *SettingsBinder {
	return &SettingsBinder{settingsService{
		tasks:       tasks,
		folders:     folders,
		enqueuer:    enq,
		mode:        mode,
		networkType: networkType,
		logger:      log,
	}}
}

// SettingsBinder exposes the concrete settings service so the wiring layer
// can close the scanner/dispatcher cycle after those services exist.
type SettingsBinder struct {
	settingsService
}

// Bind attaches the scanner used for post-switch rescans and the function
// that requests an immediate dispatch run. triggerDispatch may be nil.
func (s *SettingsBinder) Bind(scanner ScannerService, triggerDispatch func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scanner = scanner
	s.triggerDispatch = triggerDispatch
}

// SyncMode implements [SettingsService].
func (s *settingsService) SyncMode() models.SyncMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// NetworkType implements [SettingsService].
func (s *settingsService) NetworkType() models.NetworkType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.networkType
}

// SetNetworkType implements [SettingsService].
func (s *settingsService) SetNetworkType(networkType models.NetworkType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.networkType = networkType
}

// SetSyncMode implements [SettingsService]. Directions the new mode disallows
// lose both their running transfers and their queued tasks; the deletion runs
// after cancellation so late terminal marks land on missing rows, which the
// store treats as no-ops.
func (s *settingsService) SetSyncMode(ctx context.Context, mode models.SyncMode) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	previous := s.mode
	s.mode = mode
	scanner := s.scanner
	trigger := s.triggerDispatch
	s.mu.Unlock()

	if mode == previous {
		return nil
	}

	log.Info().
		Str("from", string(previous)).
		Str("to", string(mode)).
		Msg("sync mode changed")

	if !mode.AllowsUpload() {
		s.enqueuer.CancelUploads()
		if _, err := s.tasks.DeleteByDirection(ctx, models.DirectionUpload); err != nil {
			return fmt.Errorf("purge upload tasks: %w", err)
		}
	}
	if !mode.AllowsDownload() {
		s.enqueuer.CancelDownloads()
		if _, err := s.tasks.DeleteByDirection(ctx, models.DirectionDownload); err != nil {
			return fmt.Errorf("purge download tasks: %w", err)
		}
	}

	if mode == models.SyncModeDisabled {
		return nil
	}

	if scanner != nil {
		if err := scanner.ScanAll(ctx); err != nil {
			return fmt.Errorf("rescan after mode change: %w", err)
		}
	}
	if trigger != nil {
		trigger()
	}

	return nil
}

// AddFolder implements [SettingsService].
func (s *settingsService) AddFolder(ctx context.Context, path string) (models.WatchedFolder, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.WatchedFolder{}, fmt.Errorf("inspect folder: %w", err)
	}
	if !info.IsDir() {
		return models.WatchedFolder{}, fmt.Errorf("%s is not a directory", path)
	}

	folder, err := s.folders.Add(ctx, path)
	if err != nil {
		return models.WatchedFolder{}, err
	}

	s.mu.RLock()
	scanner := s.scanner
	trigger := s.triggerDispatch
	s.mu.RUnlock()

	if scanner != nil {
		if _, scanErr := scanner.ScanFolder(ctx, path); scanErr != nil {
			s.logger.Err(scanErr).
				Str("folder", path).
				Msg("initial scan of added folder failed")
		}
	}
	if trigger != nil {
		trigger()
	}

	return folder, nil
}

// RemoveFolder implements [SettingsService]. Cancellation precedes deletion
// for the same reason as in SetSyncMode.
func (s *settingsService) RemoveFolder(ctx context.Context, path string) error {
	s.enqueuer.CancelFolder(path)

	if _, err := s.tasks.DeleteByFolder(ctx, path); err != nil {
		return fmt.Errorf("purge folder tasks: %w", err)
	}

	if err := s.folders.Remove(ctx, path); err != nil {
		return err
	}

	return nil
}

// Folders implements [SettingsService].
func (s *settingsService) Folders(ctx context.Context) ([]models.WatchedFolder, error) {
	return s.folders.GetAll(ctx)
}

// Status implements [SettingsService].
func (s *settingsService) Status(ctx context.Context) (models.StatusReport, error) {
	report := models.StatusReport{
		Mode:        s.SyncMode(),
		NetworkType: s.NetworkType(),
		Counts:      make(map[models.SyncStatus]int64),
		GeneratedAt: time.Now(),
	}

	for _, status := range []models.SyncStatus{
		models.StatusPending,
		models.StatusInProgress,
		models.StatusCompleted,
		models.StatusFailed,
		models.StatusCancelled,
	} {
		count, err := s.tasks.CountByStatus(ctx, status)
		if err != nil {
			return models.StatusReport{}, fmt.Errorf("count %s tasks: %w", status, err)
		}
		report.Counts[status] = count
	}

	folders, err := s.folders.GetAll(ctx)
	if err != nil {
		return models.StatusReport{}, fmt.Errorf("list folders: %w", err)
	}
	report.Folders = folders

	return report, nil
}
