// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/codec"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// mapOpenError translates a cipher or codec failure on data read with an
// already verified secret. The secret gate has passed, so any failure here
// means the artifact is damaged. Cipher errors are flattened with %v so
// ErrDecryptionFailed never reaches the caller.
func mapOpenError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, crypto.ErrDecryptionFailed),
		errors.Is(err, crypto.ErrMalformedEnvelope),
		errors.Is(err, crypto.ErrUnsupportedVersion),
		errors.Is(err, crypto.ErrUnknownKDF),
		errors.Is(err, codec.ErrCorruptContainer):
		return fmt.Errorf("%w: %v", ErrCorruptVault, err)
	}

	return err
}

// mapWriteError translates a folder write failure.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, store.ErrArtifactExists) {
		return ErrAlreadyInitialized
	}

	return fmt.Errorf("%w: %w", ErrWriteFailed, err)
}
