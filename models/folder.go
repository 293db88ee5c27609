package models

import "time"

// WatchedFolder is a local directory the user opted into sync.
// Removing it cancels in-flight transfers for the folder and deletes its tasks.
type WatchedFolder struct {
	// Path is the absolute folder path and the primary key.
	Path string `json:"path"`

	CreatedAt time.Time `json:"created_at"`

	// LastScanned is the time the scanner last completed a pass over this
	// folder; nil until the first successful scan.
	LastScanned *time.Time `json:"last_scanned,omitempty"`
}
