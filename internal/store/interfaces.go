package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Artifact names inside a vault folder. Fixed for compatibility.
const (
	// MasterKeyFile holds the cleartext master secret.
	MasterKeyFile = "master.key"

	// DataFile holds the base64 envelope of the serialized credential list.
	DataFile = "passwords.enc"
)

// Folder is the folder-handle abstraction a vault lives in. Names are plain
// file names inside the folder; paths with separators are rejected.
type Folder interface {
	// ID returns a stable identifier of the folder (its absolute, cleaned
	// path for OS folders). Two handles to the same folder share an ID.
	ID() string

	// Exists reports whether the named artifact is present. It has no side
	// effects.
	Exists(ctx context.Context, name string) (bool, error)

	// ReadFile returns the full content of the named artifact, or an error
	// wrapping [ErrArtifactNotFound] if it is absent.
	ReadFile(ctx context.Context, name string) ([]byte, error)

	// WriteFile atomically replaces the named artifact with data. Readers
	// observe either the previous complete content or the new one. On error
	// the previous content is left intact.
	WriteFile(ctx context.Context, name string, data []byte) error

	// CreateFile atomically creates the named artifact with data. It fails
	// with [ErrArtifactExists] if the artifact already exists, so at most
	// one of several concurrent callers can succeed.
	CreateFile(ctx context.Context, name string, data []byte) error
}

// FolderHandleRepository persists remembered vault folders keyed by an
// opaque handle key.
type FolderHandleRepository interface {
	// SaveHandle inserts or replaces the path stored under key.
	SaveHandle(ctx context.Context, key, path string) error

	// GetHandle returns the handle stored under key, or an error wrapping
	// [ErrHandleNotFound].
	GetHandle(ctx context.Context, key string) (models.FolderHandle, error)

	// DeleteHandle removes the handle stored under key. Deleting a missing
	// key is not an error.
	DeleteHandle(ctx context.Context, key string) error
}
