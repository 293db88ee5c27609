package store

import (
	"context"
	"fmt"

	"github.com/morshues/msync/internal/config"
	"github.com/morshues/msync/internal/logger"
)

// Storages groups all local repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	// TaskRepository is the SQLite-backed queue of transfer work.
	TaskRepository TaskRepository

	// FolderRepository holds the directories the user opted into sync.
	FolderRepository FolderRepository

	// SessionRepository stores the authenticated session and device id.
	SessionRepository SessionRepository
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		TaskRepository:    NewTaskRepository(db, logger),
		FolderRepository:  NewFolderRepository(db, logger),
		SessionRepository: NewSessionRepository(db, logger),
	}, nil
}
