package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultKDF, cfg.Vault.KDF)
	assert.Equal(t, DefaultHandleKey, cfg.Vault.HandleKey)
	assert.Equal(t, DefaultSessionIssuer, cfg.Session.Issuer)
	assert.Equal(t, DefaultSessionDuration, cfg.Session.Duration)
	assert.Equal(t, DefaultSessionCheckInterval, cfg.Session.CheckInterval)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Empty(t, cfg.Session.SignKey)
	assert.Empty(t, cfg.Storage.HandleCacheDSN)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Session: Session{SignKey: "key"}},
		&StructuredConfig{Session: Session{Issuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "key", cfg.Session.SignKey)
	assert.Equal(t, "issuer", cfg.Session.Issuer)
}

// TestBuild_LaterSourceWins verifies that a later non-zero field overrides
// an earlier one and that zero fields never clear earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Vault: Vault{KDF: "hkdf", HandleKey: "env"}, Session: Session{Duration: time.Hour}},
		&StructuredConfig{Vault: Vault{HandleKey: "json"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "hkdf", cfg.Vault.KDF)
	assert.Equal(t, "json", cfg.Vault.HandleKey)
	assert.Equal(t, time.Hour, cfg.Session.Duration)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{"unknown kdf", &StructuredConfig{Vault: Vault{KDF: "scrypt"}}, ErrInvalidVaultConfigs},
		{"stretching kdf", &StructuredConfig{Vault: Vault{KDF: "argon2id"}}, ErrInvalidVaultConfigs},
		{"negative duration", &StructuredConfig{Session: Session{Duration: -time.Second}}, ErrInvalidSessionConfigs},
		{"negative interval", &StructuredConfig{Session: Session{CheckInterval: -time.Second}}, ErrInvalidSessionConfigs},
		{"in-memory dsn", &StructuredConfig{Storage: Storage{HandleCacheDSN: ":memory:"}}, ErrInvalidStorageConfigs},
		{"bad log level", &StructuredConfig{Log: Log{Level: "loud"}}, ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"SESSION_ISSUER": "from-env"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-env", b.configs[0].Session.Issuer)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Len(t, b.configs, 1)
}

func TestWithFlags_SetsError_OnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies nothing is appended without a path.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/missing.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.Session.Issuer = "first"
	last := StructuredJSONConfig{}
	last.Session.Issuer = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].Session.Issuer)
}

// ── LoadStructuredConfig ──────────────────────────────────────────────────────

// TestLoadStructuredConfig_Priority verifies env < flags < JSON.
func TestLoadStructuredConfig_Priority(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Log.Level = "error"
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"LOG_LEVEL":      "debug",
		"SESSION_ISSUER": "env-issuer",
		"VAULT_KDF":      "hkdf",
	})

	cfg, err := LoadStructuredConfig([]string{"-kdf", "HKDF", "-log-level", "warn", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, "env-issuer", cfg.Session.Issuer)
	assert.Equal(t, "HKDF", cfg.Vault.KDF)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, path, cfg.JSONFilePath)
}
