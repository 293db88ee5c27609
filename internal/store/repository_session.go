// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/models"
)

const (
	getSession = `
		SELECT access_token, refresh_token, expires_at
		FROM session
		WHERE id = 1;`

	upsertSession = `
		INSERT INTO session (id, access_token, refresh_token, expires_at, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			access_token  = excluded.access_token,
			refresh_token = excluded.refresh_token,
			expires_at    = excluded.expires_at,
			updated_at    = excluded.updated_at;`

	clearSession = `
		DELETE FROM session
		WHERE id = 1;`

	getDeviceID = `
		SELECT device_id
		FROM device
		WHERE id = 1;`

	insertDeviceID = `
		INSERT INTO device (id, device_id)
		VALUES (1, ?);`
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) Get(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var (
		session   models.Session
		expiresAt sql.NullTime
	)
	err := s.DB.QueryRowContext(ctx, getSession).Scan(
		&session.AccessToken,
		&session.RefreshToken,
		&expiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Get").
			Msg("failed to query stored session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if expiresAt.Valid {
		session.ExpiresAt = &expiresAt.Time
	}

	return session, nil
}

func (s *sessionRepository) Save(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	var expiresAt any
	if session.ExpiresAt != nil {
		expiresAt = *session.ExpiresAt
	}

	_, err := s.DB.ExecContext(ctx, upsertSession,
		session.AccessToken,
		session.RefreshToken,
		expiresAt,
		time.Now().UTC(),
	)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Save").
			Msg("failed to upsert session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, clearSession)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Clear").
			Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionRepository) GetOrCreateDeviceID(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	var deviceID string
	err := s.DB.QueryRowContext(ctx, getDeviceID).Scan(&deviceID)
	if err == nil {
		return deviceID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).
			Str("func", "sessionRepository.GetOrCreateDeviceID").
			Msg("failed to query device id")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	deviceID = uuid.NewString()
	if _, err := s.DB.ExecContext(ctx, insertDeviceID, deviceID); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.GetOrCreateDeviceID").
			Msg("failed to store generated device id")
		return "", fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().
		Str("func", "sessionRepository.GetOrCreateDeviceID").
		Str("device_id", deviceID).
		Msg("generated new device id")

	return deviceID, nil
}
