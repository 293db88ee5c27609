package service

import "errors"

var (
	// ErrNotAuthenticated is returned when an operation needs a bearer token
	// but no session is stored locally.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrRefreshFailed is returned when the server rejects the refresh
	// token; the local session is cleared before this is returned.
	ErrRefreshFailed = errors.New("token refresh failed")

	// ErrLoginFailed is returned when the server rejects the supplied
	// credentials.
	ErrLoginFailed = errors.New("login failed")

	// ErrSourceFileMissing is recorded on an upload task whose local file
	// disappeared between scan and transfer. Not retried.
	ErrSourceFileMissing = errors.New("source file missing")
)
