package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultService is the vault engine: master key lifecycle and the
// read/modify/write protocol of a folder's credential list.
type VaultService interface {
	// HasMasterKey reports whether the folder holds a master key.
	HasMasterKey(ctx context.Context, folder store.Folder) (bool, error)

	// InitializeVault generates a master secret, writes it as the folder's
	// master key and returns it. Fails with ErrAlreadyInitialized if a master
	// key already exists.
	InitializeVault(ctx context.Context, folder store.Folder) (string, error)

	// RevealMasterKey returns the folder's stored master secret, so it can be
	// shown again after setup.
	RevealMasterKey(ctx context.Context, folder store.Folder) (string, error)

	// Validate reports whether candidate may open the folder: it must equal
	// the stored master key if there is one, and it must decrypt the data
	// artifact if there is one.
	Validate(ctx context.Context, folder store.Folder, candidate string) (bool, error)

	// Unlock checks secret against the master key and returns the decrypted
	// credential list. An absent data artifact is an empty vault.
	Unlock(ctx context.Context, folder store.Folder, secret string) (models.CredentialList, error)

	// Save encodes, seals and atomically replaces the data artifact.
	Save(ctx context.Context, folder store.Folder, secret string, list models.CredentialList) error

	// Open unlocks the folder and returns a session owning the decrypted
	// list.
	Open(ctx context.Context, folder store.Folder, secret string) (*VaultSession, error)
}

// SessionTokenService issues and verifies session capability tokens.
type SessionTokenService interface {
	Issue(folderID string) (models.SessionToken, error)
	Verify(token string) (models.SessionToken, error)
}

// FolderHandleService remembers the last used vault folder.
type FolderHandleService interface {
	Remember(ctx context.Context, folder store.Folder) error
	Restore(ctx context.Context) (store.Folder, error)
	Forget(ctx context.Context) error
}

// IDGenerator produces credential identifiers.
type IDGenerator interface {
	Generate() string
}
