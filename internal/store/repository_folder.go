package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/models"
)

const (
	getAllWatchedFolders = `
		SELECT path, created_at, last_scanned
		FROM watched_folders
		ORDER BY path ASC;`

	insertWatchedFolder = `
		INSERT INTO watched_folders (path, created_at)
		VALUES (?, ?);`

	deleteWatchedFolder = `
		DELETE FROM watched_folders
		WHERE path = ?;`

	touchWatchedFolder = `
		UPDATE watched_folders SET last_scanned = ?
		WHERE path = ?;`
)

type folderRepository struct {
	*DB
	logger *logger.Logger
}

func NewFolderRepository(db *DB, logger *logger.Logger) FolderRepository {
	return &folderRepository{
		DB:     db,
		logger: logger,
	}
}

func (f *folderRepository) GetAll(ctx context.Context) ([]models.WatchedFolder, error) {
	log := logger.FromContext(ctx)

	rows, err := f.DB.QueryContext(ctx, getAllWatchedFolders)
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.GetAll").
			Msg("failed to query watched folders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var folders []models.WatchedFolder
	for rows.Next() {
		var (
			folder      models.WatchedFolder
			lastScanned sql.NullTime
		)
		if scanErr := rows.Scan(&folder.Path, &folder.CreatedAt, &lastScanned); scanErr != nil {
			log.Err(scanErr).
				Str("func", "folderRepository.GetAll").
				Msg("failed to scan watched folder row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		if lastScanned.Valid {
			folder.LastScanned = &lastScanned.Time
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate watched folder rows: %w", err)
	}

	return folders, nil
}

func (f *folderRepository) Add(ctx context.Context, path string) (models.WatchedFolder, error) {
	log := logger.FromContext(ctx)

	folder := models.WatchedFolder{
		Path:      path,
		CreatedAt: time.Now().UTC(),
	}

	_, err := f.DB.ExecContext(ctx, insertWatchedFolder, folder.Path, folder.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.WatchedFolder{}, ErrFolderAlreadyWatched
		}
		log.Err(err).
			Str("func", "folderRepository.Add").
			Str("path", path).
			Msg("failed to insert watched folder")
		return models.WatchedFolder{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return folder, nil
}

func (f *folderRepository) Remove(ctx context.Context, path string) error {
	log := logger.FromContext(ctx)

	res, err := f.DB.ExecContext(ctx, deleteWatchedFolder, path)
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.Remove").
			Str("path", path).
			Msg("failed to delete watched folder")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFolderNotFound
	}

	return nil
}

func (f *folderRepository) TouchScanned(ctx context.Context, path string, scannedAt time.Time) error {
	log := logger.FromContext(ctx)

	_, err := f.DB.ExecContext(ctx, touchWatchedFolder, scannedAt, path)
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.TouchScanned").
			Str("path", path).
			Msg("failed to update last scanned time")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// isUniqueViolation matches the sqlite primary-key constraint failure without
// depending on driver-specific error types.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
