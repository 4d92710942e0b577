package models

import "time"

// FolderHandle is a remembered vault folder: an opaque handle key mapped to
// the absolute folder path it resolved to when it was saved.
type FolderHandle struct {
	// Key is the opaque cache key (e.g. "vault-directory").
	Key string `json:"key"`

	// Path is the absolute, cleaned folder path.
	Path string `json:"path"`

	// UpdatedAt is when the handle was last saved.
	UpdatedAt time.Time `json:"updated_at"`
}
