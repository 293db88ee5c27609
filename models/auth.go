package models

import "time"

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	DeviceID string `json:"deviceId"`
}

// LoginResponse carries the initial token pair issued after login.
type LoginResponse struct {
	OK           bool   `json:"ok"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshRequest is the payload of POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
	DeviceID     string `json:"deviceId"`
}

// RefreshResponse carries the rotated token pair.
type RefreshResponse struct {
	OK           bool   `json:"ok"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Session is the locally persisted credential state for this device.
// ExpiresAt is extracted from the access token's exp claim so the token
// service can refresh ahead of expiry without another parse.
type Session struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}
