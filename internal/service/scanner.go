// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/morshues/msync/internal/adapter"
	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/internal/store"
	"github.com/morshues/msync/internal/utils"
	"github.com/morshues/msync/models"
)

type scannerService struct {
	tasks    store.TaskRepository
	folders  store.FolderRepository
	local    LocalFileService
	server   adapter.ServerAdapter
	settings SettingsService

	logger *logger.Logger
}

func NewScannerService(
	tasks store.TaskRepository,
	folders store.FolderRepository,
	local LocalFileService,
	server adapter.ServerAdapter,
	settings SettingsService,
	log *logger.Logger,
) ScannerService {
	return &scannerService{
		tasks:    tasks,
		folders:  folders,
		local:    local,
		server:   server,
		settings: settings,
		logger:   log,
	}
}

// ScanFolder implements [ScannerService]. The server owns the diff; the
// scanner only lists local files, filters the result by sync policy, and
// turns what remains into tasks.
func (s *scannerService) ScanFolder(ctx context.Context, folderPath string) (int, error) {
	log := logger.FromContext(ctx)

	mode := s.settings.SyncMode()
	if mode == models.SyncModeDisabled {
		return 0, nil
	}

	localEntries, err := s.local.ListFolder(folderPath)
	if err != nil {
		return 0, fmt.Errorf("list local folder: %w", err)
	}

	diff, err := s.server.CompareFolder(ctx, folderPath, localEntries)
	if err != nil {
		return 0, fmt.Errorf("compare folder: %w", err)
	}

	candidates := make([]models.SyncTask, 0, len(diff.Upload)+len(diff.Download))

	if mode.AllowsUpload() {
		for _, entry := range diff.Upload {
			candidates = append(candidates, s.buildTask(folderPath, entry, models.DirectionUpload))
		}
	}

	if mode.AllowsDownload() {
		for _, entry := range diff.Download {
			// only media lands automatically; everything else stays
			// server-side until fetched explicitly
			if !utils.IsMediaFile(entry.Name) {
				continue
			}
			candidates = append(candidates, s.buildTask(folderPath, entry, models.DirectionDownload))
		}
	}

	inserted, err := s.tasks.AddTasks(ctx, candidates...)
	if err != nil {
		return 0, fmt.Errorf("enqueue scan results: %w", err)
	}

	if err := s.folders.TouchScanned(ctx, folderPath, time.Now().UTC()); err != nil {
		log.Warn().Err(err).
			Str("folder", folderPath).
			Msg("failed to record scan time")
	}

	log.Info().
		Str("folder", folderPath).
		Int("candidates", len(candidates)).
		Int("inserted", len(inserted)).
		Msg("folder scanned")

	return len(inserted), nil
}

// ScanAll implements [ScannerService]. One folder's failure never aborts the
// others; the run reports success as long as it completed the sweep.
func (s *scannerService) ScanAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	folders, err := s.folders.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("list watched folders: %w", err)
	}

	for _, folder := range folders {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if _, scanErr := s.ScanFolder(ctx, folder.Path); scanErr != nil {
			log.Err(scanErr).
				Str("folder", folder.Path).
				Msg("folder scan failed, continuing with remaining folders")
		}
	}

	return nil
}

// Preview implements [ScannerService].
func (s *scannerService) Preview(ctx context.Context, folderPath string) (models.CompareFolderResponse, error) {
	localEntries, err := s.local.ListFolder(folderPath)
	if err != nil {
		return models.CompareFolderResponse{}, fmt.Errorf("list local folder: %w", err)
	}

	diff, err := s.server.CompareFolder(ctx, folderPath, localEntries)
	if err != nil {
		return models.CompareFolderResponse{}, fmt.Errorf("compare folder: %w", err)
	}

	return diff, nil
}

func (s *scannerService) buildTask(folderPath string, entry models.FileEntry, direction models.SyncDirection) models.SyncTask {
	return models.SyncTask{
		FolderPath: folderPath,
		FileName:   entry.Name,
		FilePath:   filepath.Join(folderPath, entry.Name),
		Direction:  direction,
		Status:     models.StatusPending,
		FileSize:   entry.Size,
	}
}
