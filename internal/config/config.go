// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Defaults applied to fields that no source has set.
const (
	DefaultKDF                  = "hkdf"
	DefaultHandleKey            = "vault-directory"
	DefaultSessionIssuer        = "go-pass-vault"
	DefaultSessionDuration      = 7 * 24 * time.Hour
	DefaultSessionCheckInterval = time.Minute
	DefaultLogLevel             = "info"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-vault module. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Vault holds the cipher settings and the remembered-folder key.
	Vault Vault `envPrefix:"VAULT_"`

	// Session holds the capability-token settings.
	Session Session `envPrefix:"SESSION_"`

	// Storage holds configuration of the folder-handle cache database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds logger output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Vault configures how new envelopes are sealed.
type Vault struct {
	// KDF names the key-derivation function for new saves. Only "hkdf"
	// (the default) is accepted; the master key is used without stretching.
	// Env: VAULT_KDF
	KDF string `env:"KDF"`

	// HandleKey is the key the last-used folder is remembered under.
	// Env: VAULT_HANDLE_KEY
	HandleKey string `env:"HANDLE_KEY"`
}

// Session configures the capability tokens issued after unlock.
type Session struct {
	// SignKey is the HMAC key for session tokens. When empty, a random key
	// is generated per process, so tokens do not survive a restart.
	// Env: SESSION_SIGN_KEY
	SignKey string `env:"SIGN_KEY"`

	// Issuer is the "iss" claim of every session token.
	// Env: SESSION_ISSUER
	Issuer string `env:"ISSUER"`

	// Duration is how long a session stays valid after unlock (e.g. "168h").
	// Env: SESSION_DURATION
	Duration time.Duration `env:"DURATION"`

	// CheckInterval is how often the auto-lock worker checks expiry.
	// Env: SESSION_CHECK_INTERVAL
	CheckInterval time.Duration `env:"CHECK_INTERVAL"`
}

// Storage holds settings of the folder-handle cache.
type Storage struct {
	// HandleCacheDSN is the path of the SQLite database remembering the last
	// vault folder. Empty disables the cache.
	// Env: STORAGE_HANDLE_CACHE_DSN
	HandleCacheDSN string `env:"HANDLE_CACHE_DSN"`
}

// Log holds logger settings.
type Log struct {
	// File is the log file path. Empty logs to stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is the minimum zerolog level ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (os.Args)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return LoadStructuredConfig(os.Args[1:])
}

// LoadStructuredConfig is [GetStructuredConfig] with explicit command-line
// arguments (without the program name).
func LoadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func (cfg *StructuredConfig) setDefaults() {
	if cfg.Vault.KDF == "" {
		cfg.Vault.KDF = DefaultKDF
	}
	if cfg.Vault.HandleKey == "" {
		cfg.Vault.HandleKey = DefaultHandleKey
	}
	if cfg.Session.Issuer == "" {
		cfg.Session.Issuer = DefaultSessionIssuer
	}
	if cfg.Session.Duration == 0 {
		cfg.Session.Duration = DefaultSessionDuration
	}
	if cfg.Session.CheckInterval == 0 {
		cfg.Session.CheckInterval = DefaultSessionCheckInterval
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
