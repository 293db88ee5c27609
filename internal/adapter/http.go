package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/morshues/msync/internal/config"
	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/internal/utils"
	"github.com/morshues/msync/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	tokens TokenSource

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.BaseURL and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// tokens may be nil, in which case only the unauthenticated Login and
// Refresh calls will succeed. Returns an error if cfg.BaseURL is empty or
// cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.Server, tokens TokenSource, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, tokens: tokens, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// encodeFolder turns a folder path into the URL path segment the server
// expects: URL-safe base64 without padding.
func encodeFolder(folderPath string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(folderPath))
}

// ListFolder implements [ServerAdapter]. It GETs the remote listing from
// GET /api/file-sync/{folder}/files and returns the decoded entries.
func (h *httpServerAdapter) ListFolder(ctx context.Context, folderPath string) ([]models.FileEntry, error) {
	var result models.ListFolderResponse

	resp, err := h.send(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetResult(&result).
			Get("/api/file-sync/" + encodeFolder(folderPath) + "/files")
	})
	if err != nil {
		return nil, fmt.Errorf("list folder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Entries, nil
}

// CompareFolder implements [ServerAdapter]. It POSTs the local listing to
// POST /api/file-sync/{folder}/sync; the server owns the comparison rule and
// replies with the entries each side is missing.
func (h *httpServerAdapter) CompareFolder(ctx context.Context, folderPath string, local []models.FileEntry) (models.CompareFolderResponse, error) {
	var result models.CompareFolderResponse

	resp, err := h.send(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(models.CompareFolderRequest{Entries: local}).
			SetResult(&result).
			Post("/api/file-sync/" + encodeFolder(folderPath) + "/sync")
	})
	if err != nil {
		return models.CompareFolderResponse{}, fmt.Errorf("compare folder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CompareFolderResponse{}, err
	}

	return result, nil
}

// UploadFile implements [ServerAdapter]. It streams content as the `file`
// multipart part of POST /api/file-sync/{folder}/upload, with the local
// modification time (epoch milliseconds) in the `lastModified` text part.
func (h *httpServerAdapter) UploadFile(ctx context.Context, folderPath, fileName string, content io.Reader, modifiedAt time.Time) error {
	call := func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetFileReader("file", fileName, content).
			SetMultipartFormData(map[string]string{
				"lastModified": strconv.FormatInt(modifiedAt.UnixMilli(), 10),
			}).
			Post("/api/file-sync/" + encodeFolder(folderPath) + "/upload")
	}

	resp, err := h.authedCall(ctx, call)
	if err != nil {
		return fmt.Errorf("upload file request: %w", err)
	}

	// The 401 retry must replay the multipart body, which is only possible
	// when the content can be rewound. Otherwise the caller's own retry
	// reopens the file and picks up the refreshed token.
	if resp.StatusCode() == http.StatusUnauthorized && h.tokens != nil {
		if invErr := h.tokens.Invalidate(ctx); invErr == nil {
			if seeker, ok := content.(io.Seeker); ok {
				if _, seekErr := seeker.Seek(0, io.SeekStart); seekErr == nil {
					resp, err = h.authedCall(ctx, call)
					if err != nil {
						return fmt.Errorf("upload file request: %w", err)
					}
				}
			}
		}
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var result models.UploadResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return fmt.Errorf("decode upload response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("upload rejected by server")
	}

	return nil
}

// DownloadFile implements [ServerAdapter]. It GETs
// GET /api/file-sync/{folder}/files/{file}/download without buffering and
// returns the raw stream together with the Last-Modified and Content-Type
// response headers. The caller owns the returned body.
func (h *httpServerAdapter) DownloadFile(ctx context.Context, folderPath, fileName string) (models.RemoteFileResult, error) {
	resp, err := h.send(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetDoNotParseResponse(true).
			Get("/api/file-sync/" + encodeFolder(folderPath) + "/files/" + url.PathEscape(fileName) + "/download")
	})
	if err != nil {
		return models.RemoteFileResult{}, fmt.Errorf("download file request: %w", err)
	}

	if !resp.IsSuccess() {
		body, _ := io.ReadAll(io.LimitReader(resp.RawBody(), 4096))
		_ = resp.RawBody().Close()
		return models.RemoteFileResult{}, mapRawHTTPError(resp.StatusCode(), string(body))
	}

	result := models.RemoteFileResult{
		Body:        resp.RawBody(),
		ContentType: resp.Header().Get("Content-Type"),
	}
	if modified, parseErr := http.ParseTime(resp.Header().Get("Last-Modified")); parseErr == nil {
		result.ModifiedAt = &modified
	}

	return result, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and returns the issued token pair.
func (h *httpServerAdapter) Login(ctx context.Context, loginReq models.LoginRequest) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(loginReq).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	return result, nil
}

// Refresh implements [ServerAdapter]. It POSTs the refresh token to
// POST /api/auth/refresh and returns the rotated token pair.
func (h *httpServerAdapter) Refresh(ctx context.Context, refreshReq models.RefreshRequest) (models.RefreshResponse, error) {
	var result models.RefreshResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(refreshReq).
		SetResult(&result).
		Post("/api/auth/refresh")
	if err != nil {
		return models.RefreshResponse{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RefreshResponse{}, err
	}

	return result, nil
}

// send runs an authenticated call, retrying exactly once with a
// force-refreshed token when the server answers 401. The retry covers tokens
// revoked server-side while still looking valid locally.
func (h *httpServerAdapter) send(ctx context.Context, call func(*resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	resp, err := h.authedCall(ctx, call)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusUnauthorized || h.tokens == nil {
		return resp, nil
	}

	if body := resp.RawBody(); body != nil {
		_ = body.Close()
	}

	if invErr := h.tokens.Invalidate(ctx); invErr != nil {
		h.logger.Err(invErr).
			Str("func", "httpServerAdapter.send").
			Msg("token refresh after 401 failed")
		return resp, nil
	}

	return h.authedCall(ctx, call)
}

func (h *httpServerAdapter) authedCall(ctx context.Context, call func(*resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	req := h.client.R().SetContext(ctx)

	if h.tokens != nil {
		token, err := h.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("acquire access token: %w", err)
		}
		req.SetHeader("Authorization", "Bearer "+token)
	}

	return call(req)
}

func mapRawHTTPError(statusCode int, body string) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(statusCode)
		}
		return fmt.Errorf("http %d: %s", statusCode, body)
	}
}
