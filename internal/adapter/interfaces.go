// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating with
// the msync file-sync server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) that speaks the multipart
// file-sync API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"
	"time"

	"github.com/morshues/msync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// TokenSource supplies the bearer credential attached to authenticated
// requests. Implementations own refresh policy and session persistence.
type TokenSource interface {
	// Token returns a currently valid access token, refreshing it first if
	// it is expired or close to expiry.
	Token(ctx context.Context) (string, error)

	// Invalidate discards the cached access token and forces a refresh on
	// the next Token call. It is invoked after the server rejects a request
	// with 401 despite a locally valid-looking token.
	Invalidate(ctx context.Context) error
}

// ServerAdapter defines transport-agnostic communication with the file-sync
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// ListFolder returns the remote listing of the given watched folder.
	ListFolder(ctx context.Context, folderPath string) ([]models.FileEntry, error)

	// CompareFolder submits the local listing of folderPath and returns the
	// server-computed diff: entries to upload and entries to download.
	CompareFolder(ctx context.Context, folderPath string, local []models.FileEntry) (models.CompareFolderResponse, error)

	// UploadFile streams one file to the remote folder as a multipart
	// request, carrying the local modification time alongside the content.
	UploadFile(ctx context.Context, folderPath, fileName string, content io.Reader, modifiedAt time.Time) error

	// DownloadFile fetches one remote file as a stream. The caller must
	// consume and close the returned body exactly once.
	DownloadFile(ctx context.Context, folderPath, fileName string) (models.RemoteFileResult, error)

	// Login exchanges user credentials for a token pair. It does not require
	// an existing session.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Refresh exchanges a refresh token for a fresh token pair. It does not
	// go through the TokenSource; the TokenSource itself calls it.
	Refresh(ctx context.Context, req models.RefreshRequest) (models.RefreshResponse, error)
}
