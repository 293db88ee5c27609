package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morshues/msync/internal/logger"
)

func newTestFolderRepo(t *testing.T, db *sql.DB) FolderRepository {
	t.Helper()
	return NewFolderRepository(newDBFromSQL(db), logger.Nop())
}

func TestFolderRepository_GetAll_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestFolderRepo(t, db)

	scanned := time.Now().Add(-time.Hour)
	rows := sqlmock.NewRows([]string{"path", "created_at", "last_scanned"}).
		AddRow("/home/user/docs", time.Now().Add(-48*time.Hour), scanned).
		AddRow("/home/user/photos", time.Now(), nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM watched_folders")).
		WillReturnRows(rows)

	folders, err := repo.GetAll(testContext())

	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Equal(t, "/home/user/docs", folders[0].Path)
	require.NotNil(t, folders[0].LastScanned)
	assert.Nil(t, folders[1].LastScanned)
}

func TestFolderRepository_GetAll_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestFolderRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM watched_folders")).
		WillReturnError(errors.New("database is locked"))

	_, err := repo.GetAll(testContext())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFolderRepository_Add_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestFolderRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO watched_folders")).
		WithArgs("/home/user/photos", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	folder, err := repo.Add(testContext(), "/home/user/photos")

	require.NoError(t, err)
	assert.Equal(t, "/home/user/photos", folder.Path)
	assert.False(t, folder.CreatedAt.IsZero())
}

func TestFolderRepository_Add_AlreadyWatched(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestFolderRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO watched_folders")).
		WillReturnError(errors.New("UNIQUE constraint failed: watched_folders.path"))

	_, err := repo.Add(testContext(), "/home/user/photos")

	assert.ErrorIs(t, err, ErrFolderAlreadyWatched)
}

func TestFolderRepository_Remove_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestFolderRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM watched_folders")).
		WithArgs("/home/user/photos").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Remove(testContext(), "/home/user/photos")

	require.NoError(t, err)
}

func TestFolderRepository_Remove_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestFolderRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM watched_folders")).
		WithArgs("/nope").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Remove(testContext(), "/nope")

	assert.ErrorIs(t, err, ErrFolderNotFound)
}

func TestFolderRepository_TouchScanned(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestFolderRepo(t, db)

	scannedAt := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE watched_folders SET last_scanned = ?")).
		WithArgs(scannedAt, "/home/user/photos").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.TouchScanned(testContext(), "/home/user/photos", scannedAt)

	require.NoError(t, err)
}
