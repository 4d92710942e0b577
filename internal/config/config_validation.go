// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if _, err := crypto.ParseKDF(cfg.Vault.KDF); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidVaultConfigs, err)
	}

	if cfg.Session.Duration < 0 || cfg.Session.CheckInterval < 0 {
		return ErrInvalidSessionConfigs
	}

	if strings.Contains(cfg.Storage.HandleCacheDSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
	}

	return nil
}
