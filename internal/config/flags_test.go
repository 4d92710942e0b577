package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *StructuredConfig
	}{
		{
			name:     "no flags",
			args:     nil,
			expected: &StructuredConfig{},
		},
		{
			name: "vault flags",
			args: []string{"-kdf", "hkdf", "-handle-key", "home"},
			expected: &StructuredConfig{
				Vault: Vault{KDF: "hkdf", HandleKey: "home"},
			},
		},
		{
			name: "session flags",
			args: []string{"-session-sign-key", "k", "-session-issuer", "me", "-session-duration", "2h", "-session-check-interval", "5s"},
			expected: &StructuredConfig{
				Session: Session{SignKey: "k", Issuer: "me", Duration: 2 * time.Hour, CheckInterval: 5 * time.Second},
			},
		},
		{
			name: "storage and log flags",
			args: []string{"-handle-cache", "/tmp/h.db", "-log-file", "/tmp/v.log", "-log-level", "warn"},
			expected: &StructuredConfig{
				Storage: Storage{HandleCacheDSN: "/tmp/h.db"},
				Log:     Log{File: "/tmp/v.log", Level: "warn"},
			},
		},
		{
			name:     "short config flag",
			args:     []string{"-c", "/etc/vault.json"},
			expected: &StructuredConfig{JSONFilePath: "/etc/vault.json"},
		},
		{
			name:     "long config flag",
			args:     []string{"-config", "/etc/vault.json"},
			expected: &StructuredConfig{JSONFilePath: "/etc/vault.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-address", "localhost:8080"}},
		{"bad duration", []string{"-session-duration", "forever"}},
		{"removed argon2 flag", []string{"-argon2-time", "2"}},
		{"missing value", []string{"-kdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
