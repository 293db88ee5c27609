package store

import (
	"database/sql"

	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
