package models

import (
	"io"
	"time"
)

// FileEntry is the unit of comparison exchanged with the remote diff
// endpoint: just enough metadata for the server to decide equality.
type FileEntry struct {
	Name string `json:"name"`
	Size int64  `json:"size"`

	// ModifiedAt is the file's last-modified time in epoch milliseconds.
	ModifiedAt int64 `json:"mtimeMs"`
}

// ListFolderResponse is the payload of GET /api/file-sync/{folder}/files.
type ListFolderResponse struct {
	OK      bool        `json:"ok"`
	Entries []FileEntry `json:"entries"`
}

// CompareFolderRequest carries the local folder listing to the remote diff
// endpoint. The server owns the comparison rule.
type CompareFolderRequest struct {
	Entries []FileEntry `json:"entries"`
}

// CompareFolderResponse is the remote-computed set difference: Upload lists
// entries the server lacks or holds stale, Download lists entries the client
// lacks.
type CompareFolderResponse struct {
	OK       bool        `json:"ok"`
	Upload   []FileEntry `json:"upload"`
	Download []FileEntry `json:"download"`
}

// UploadResponse acknowledges a multipart file upload.
type UploadResponse struct {
	OK bool `json:"ok"`
}

// RemoteFileResult is the payload of a file download: a byte stream plus the
// metadata carried in response headers. Body must be consumed exactly once
// and closed by the consumer.
type RemoteFileResult struct {
	Body io.ReadCloser

	// ModifiedAt is parsed from the Last-Modified header; nil when absent
	// or malformed.
	ModifiedAt *time.Time

	// ContentType is the MIME type reported by the server, if any.
	ContentType string
}
