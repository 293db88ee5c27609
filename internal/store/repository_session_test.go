package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/models"
)

func newTestSessionRepo(t *testing.T, db *sql.DB) SessionRepository {
	t.Helper()
	return NewSessionRepository(newDBFromSQL(db), logger.Nop())
}

func TestSessionRepository_Get_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSessionRepo(t, db)

	expiresAt := time.Now().Add(time.Hour)
	rows := sqlmock.NewRows([]string{"access_token", "refresh_token", "expires_at"}).
		AddRow("access-abc", "refresh-def", expiresAt)

	mock.ExpectQuery(regexp.QuoteMeta("FROM session")).
		WillReturnRows(rows)

	session, err := repo.Get(testContext())

	require.NoError(t, err)
	assert.Equal(t, "access-abc", session.AccessToken)
	assert.Equal(t, "refresh-def", session.RefreshToken)
	require.NotNil(t, session.ExpiresAt)
	assert.WithinDuration(t, expiresAt, *session.ExpiresAt, time.Second)
}

func TestSessionRepository_Get_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSessionRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM session")).
		WillReturnRows(sqlmock.NewRows([]string{"access_token", "refresh_token", "expires_at"}))

	_, err := repo.Get(testContext())

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_Save_Upserts(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSessionRepo(t, db)

	expiresAt := time.Now().Add(30 * time.Minute)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO session")).
		WithArgs("access-abc", "refresh-def", expiresAt, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(testContext(), models.Session{
		AccessToken:  "access-abc",
		RefreshToken: "refresh-def",
		ExpiresAt:    &expiresAt,
	})

	require.NoError(t, err)
}

func TestSessionRepository_Save_NilExpiry(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSessionRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO session")).
		WithArgs("access-abc", "refresh-def", nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(testContext(), models.Session{
		AccessToken:  "access-abc",
		RefreshToken: "refresh-def",
	})

	require.NoError(t, err)
}

func TestSessionRepository_Clear(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSessionRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM session")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Clear(testContext())

	require.NoError(t, err)
}

func TestSessionRepository_GetOrCreateDeviceID_ReturnsStored(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSessionRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM device")).
		WillReturnRows(sqlmock.NewRows([]string{"device_id"}).AddRow("device-xyz"))

	deviceID, err := repo.GetOrCreateDeviceID(testContext())

	require.NoError(t, err)
	assert.Equal(t, "device-xyz", deviceID)
}

func TestSessionRepository_GetOrCreateDeviceID_GeneratesOnFirstUse(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSessionRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM device")).
		WillReturnRows(sqlmock.NewRows([]string{"device_id"}))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO device")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	deviceID, err := repo.GetOrCreateDeviceID(testContext())

	require.NoError(t, err)
	_, parseErr := uuid.Parse(deviceID)
	assert.NoError(t, parseErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_GetOrCreateDeviceID_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestSessionRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM device")).
		WillReturnError(errors.New("database is locked"))

	_, err := repo.GetOrCreateDeviceID(testContext())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
