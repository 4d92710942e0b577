package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is invalid.
var (
	// ErrInvalidVaultConfigs indicates an unknown KDF name.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidSessionConfigs indicates a negative session duration or
	// check interval.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidStorageConfigs indicates an unsupported in-memory DSN for
	// the folder handle cache.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
