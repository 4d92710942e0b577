// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const (
	// masterSecretSize is the number of random bytes behind a master secret.
	masterSecretSize = 32
	// keySize is the AES-256 key length.
	keySize = 32
	// hkdfInfo domain-separates the vault key from any other use of the secret.
	hkdfInfo = "go-pass-vault/v1 aes-256-gcm"
)

// KDF identifies how the cipher key is obtained from the master secret.
// The numeric value is written into every envelope header.
type KDF byte

// KDFHKDF expands the secret with HKDF-SHA256 and a per-envelope salt into
// the AES key. No stretching is applied: the secret itself is 256 bits of
// randomness and is the key material.
const KDFHKDF KDF = 1

// String returns the configuration name of the KDF.
func (k KDF) String() string {
	switch k {
	case KDFHKDF:
		return "hkdf"
	default:
		return fmt.Sprintf("kdf(%d)", byte(k))
	}
}

// ParseKDF maps a configuration name to a [KDF]. The empty string selects
// [KDFHKDF].
func ParseKDF(name string) (KDF, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "hkdf":
		return KDFHKDF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKDF, name)
	}
}

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	kdf    KDF
	random io.Reader
}

// NewKeyChainService constructs a [KeyChainService] that seals new envelopes
// with the given KDF.
func NewKeyChainService(kdf KDF) (KeyChainService, error) {
	if kdf != KDFHKDF {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKDF, kdf)
	}

	return &keyChainService{
		kdf:    kdf,
		random: rand.Reader,
	}, nil
}

// GenerateMasterSecret implements [KeyMaterialProvider]. It reads 32 random
// bytes from the CSPRNG and returns them hex-encoded.
func (k *keyChainService) GenerateMasterSecret() (string, error) {
	buf := make([]byte, masterSecretSize)
	if _, err := io.ReadFull(k.random, buf); err != nil {
		return "", fmt.Errorf("generate master secret: %w", err)
	}
	defer zero(buf)

	return hex.EncodeToString(buf), nil
}

// SecretsEqual implements [KeyMaterialProvider].
func (k *keyChainService) SecretsEqual(candidate, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) == 1
}

// deriveKey turns the master secret into the 256-bit cipher key according to
// the KDF recorded in the envelope header.
func deriveKey(h envelopeHeader, secret string) ([]byte, error) {
	switch h.kdf {
	case KDFHKDF:
		key := make([]byte, keySize)
		r := hkdf.New(sha256.New, []byte(secret), h.salt, []byte(hkdfInfo))
		if _, err := io.ReadFull(r, key); err != nil {
			return nil, fmt.Errorf("hkdf expand: %w", err)
		}
		return key, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKDF, h.kdf)
	}
}

// zero overwrites b. Used for key material that must not outlive its use.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
