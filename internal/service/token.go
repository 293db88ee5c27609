// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/internal/store"
	"github.com/morshues/msync/internal/utils"
	"github.com/morshues/msync/models"
)

// refreshThreshold is how close to expiry a token may get before it is
// refreshed ahead of use.
const refreshThreshold = 2 * time.Minute

type tokenService struct {
	sessions store.SessionRepository
	auth     AuthAPI

	mu      sync.Mutex
	session models.Session
	loaded  bool

	now func() time.Time

	logger *logger.Logger
}

// NewTokenService builds a TokenService over the persisted session. The auth
// client is attached separately via SetAuthAPI because the server adapter is
// itself constructed with this service as its token source.
func NewTokenService(sessions store.SessionRepository, logger *logger.Logger) TokenService {
	return &tokenService{
		sessions: sessions,
		now:      time.Now,
		logger:   logger,
	}
}

// SetAuthAPI implements [TokenService]. It attaches the client used for login
// and refresh calls.
func (t *tokenService) SetAuthAPI(auth AuthAPI) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.auth = auth
}

// Token implements [TokenService]. It returns the stored access token,
// refreshing it first when expiry is less than refreshThreshold away. A
// caller that lost the refresh race re-reads the stored session instead of
// refreshing again.
func (t *tokenService) Token(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	session, err := t.currentSessionLocked(ctx)
	if err != nil {
		return "", err
	}

	if !t.expiringSoon(session) {
		return session.AccessToken, nil
	}

	// another process sharing the database may have rotated the tokens
	if fresh, readErr := t.sessions.Get(ctx); readErr == nil &&
		fresh.AccessToken != session.AccessToken && !t.expiringSoon(fresh) {
		t.session = fresh
		return fresh.AccessToken, nil
	}

	refreshed, err := t.refreshLocked(ctx, session)
	if err != nil {
		return "", err
	}

	return refreshed.AccessToken, nil
}

// Invalidate implements [TokenService]. It forces a refresh regardless of the
// local expiry, for tokens the server has rejected.
func (t *tokenService) Invalidate(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	session, err := t.currentSessionLocked(ctx)
	if err != nil {
		return err
	}

	_, err = t.refreshLocked(ctx, session)
	return err
}

// Login implements [TokenService]. It exchanges credentials for a token pair
// and persists the resulting session.
func (t *tokenService) Login(ctx context.Context, email, password string) error {
	log := logger.FromContext(ctx)

	deviceID, err := t.sessions.GetOrCreateDeviceID(ctx)
	if err != nil {
		return fmt.Errorf("resolve device id: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.auth == nil {
		return fmt.Errorf("%w: no auth client attached", ErrLoginFailed)
	}

	resp, err := t.auth.Login(ctx, models.LoginRequest{
		Email:    email,
		Password: password,
		DeviceID: deviceID,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}
	if !resp.OK || resp.AccessToken == "" {
		return ErrLoginFailed
	}

	session := t.buildSession(resp.AccessToken, resp.RefreshToken)
	if err := t.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	t.session = session
	t.loaded = true

	log.Info().Str("email", email).Msg("logged in")
	return nil
}

// Logout implements [TokenService]. It drops the stored session.
func (t *tokenService) Logout(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	t.session = models.Session{}
	t.loaded = false
	return nil
}

func (t *tokenService) currentSessionLocked(ctx context.Context) (models.Session, error) {
	if t.loaded && t.session.AccessToken != "" {
		return t.session, nil
	}

	session, err := t.sessions.Get(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}

	t.session = session
	t.loaded = true
	return session, nil
}

func (t *tokenService) expiringSoon(session models.Session) bool {
	if session.ExpiresAt == nil {
		// no expiry claim; treat the token as long-lived
		return false
	}
	return t.now().Add(refreshThreshold).After(*session.ExpiresAt)
}

// refreshLocked rotates the token pair. A refresh the server rejects clears
// the session: the refresh token is single-use and now burned.
func (t *tokenService) refreshLocked(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	if t.auth == nil {
		return models.Session{}, fmt.Errorf("%w: no auth client attached", ErrRefreshFailed)
	}

	deviceID, err := t.sessions.GetOrCreateDeviceID(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("resolve device id: %w", err)
	}

	resp, err := t.auth.Refresh(ctx, models.RefreshRequest{
		RefreshToken: session.RefreshToken,
		DeviceID:     deviceID,
	})
	if err != nil || !resp.OK || resp.AccessToken == "" {
		if clearErr := t.sessions.Clear(ctx); clearErr != nil {
			log.Err(clearErr).
				Str("func", "tokenService.refreshLocked").
				Msg("failed to clear session after refresh rejection")
		}
		t.session = models.Session{}
		t.loaded = false

		if err != nil {
			return models.Session{}, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
		}
		return models.Session{}, ErrRefreshFailed
	}

	refreshed := t.buildSession(resp.AccessToken, resp.RefreshToken)
	if err := t.sessions.Save(ctx, refreshed); err != nil {
		return models.Session{}, fmt.Errorf("persist refreshed session: %w", err)
	}

	t.session = refreshed

	log.Debug().
		Str("func", "tokenService.refreshLocked").
		Msg("token pair rotated")
	return refreshed, nil
}

func (t *tokenService) buildSession(accessToken, refreshToken string) models.Session {
	session := models.Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
	if expiry, err := utils.TokenExpiry(accessToken); err == nil {
		session.ExpiresAt = &expiry
	}
	return session
}
