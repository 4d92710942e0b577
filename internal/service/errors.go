package service

import "errors"

// Vault store errors. Every failure of a vault operation wraps exactly one
// of these, so callers can tell "wrong key" from "damaged vault" from
// "couldn't write to disk".
var (
	// ErrAlreadyInitialized is returned by InitializeVault when the folder
	// already holds a master key. Not retryable: the caller should unlock.
	ErrAlreadyInitialized = errors.New("vault already initialized")
	// ErrNotInitialized is returned when a folder has no master key.
	ErrNotInitialized = errors.New("vault not initialized")
	// ErrInvalidSecret means the supplied master secret is wrong.
	ErrInvalidSecret = errors.New("invalid master secret")
	// ErrCorruptVault means the data artifact exists but cannot be
	// authenticated or decoded with the correct secret.
	ErrCorruptVault = errors.New("vault data is corrupt")
	// ErrWriteFailed means the storage write or replace failed. The previous
	// artifact is intact and the in-memory list is unchanged.
	ErrWriteFailed = errors.New("vault write failed")
)

// Session errors.
var (
	ErrCredentialNotFound = errors.New("credential not found")
	ErrSessionClosed      = errors.New("vault session is locked")
	ErrSessionExpired     = errors.New("vault session expired")
	ErrSessionInvalid     = errors.New("vault session token invalid")
)

// Remembered folder errors.
var (
	ErrFolderNotRemembered = errors.New("no remembered vault folder")
	ErrHandleCacheDisabled = errors.New("folder handle cache is disabled")
)
