// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"io"
)

// Envelope layout (before base64):
//
//	magic "PVLT"  4 bytes
//	version       1 byte   (envelopeVersion)
//	kdf           1 byte   (KDF)
//	salt         16 bytes
//	nonce        12 bytes
//	ciphertext    n bytes  AES-256-GCM, 16-byte tag appended
//
// The 34-byte header is passed to GCM as additional data, so editing any
// header byte fails authentication just like editing the ciphertext.
const (
	envelopeMagic   = "PVLT"
	envelopeVersion = 1

	saltSize   = 16
	nonceSize  = 12
	tagSize    = 16
	headerSize = len(envelopeMagic) + 1 + 1 + saltSize + nonceSize
)

// envelopeEncoding rejects non-canonical base64 (stray padding bits), so that
// every byte of passwords.enc is covered by authentication.
var envelopeEncoding = base64.StdEncoding.Strict()

type envelopeHeader struct {
	version byte
	kdf     KDF
	salt    []byte
	nonce   []byte
}

func (h envelopeHeader) marshal() []byte {
	buf := make([]byte, 0, headerSize)
	buf = append(buf, envelopeMagic...)
	buf = append(buf, h.version, byte(h.kdf))
	buf = append(buf, h.salt...)
	buf = append(buf, h.nonce...)
	return buf
}

func parseEnvelopeHeader(b []byte) (envelopeHeader, error) {
	if len(b) < headerSize {
		return envelopeHeader{}, fmt.Errorf("%w: header truncated (%d bytes)", ErrMalformedEnvelope, len(b))
	}
	if string(b[:4]) != envelopeMagic {
		return envelopeHeader{}, fmt.Errorf("%w: bad magic", ErrMalformedEnvelope)
	}

	h := envelopeHeader{
		version: b[4],
		kdf:     KDF(b[5]),
		salt:    b[6 : 6+saltSize],
		nonce:   b[6+saltSize : headerSize],
	}

	if h.version != envelopeVersion {
		return envelopeHeader{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.version)
	}

	if h.kdf != KDFHKDF {
		return envelopeHeader{}, fmt.Errorf("%w: %d", ErrUnknownKDF, byte(h.kdf))
	}

	return h, nil
}

// Seal implements [Cipher]. A fresh salt and nonce are drawn for every call,
// so sealing the same plaintext twice yields different envelopes.
func (k *keyChainService) Seal(plaintext []byte, secret string) (string, error) {
	// 1. Random salt and nonce
	random := make([]byte, saltSize+nonceSize)
	if _, err := io.ReadFull(k.random, random); err != nil {
		return "", fmt.Errorf("generate salt and nonce: %w", err)
	}

	h := envelopeHeader{
		version: envelopeVersion,
		kdf:     k.kdf,
		salt:    random[:saltSize],
		nonce:   random[saltSize:],
	}

	// 2. Derive key and build AES-GCM
	gcm, err := newGCM(h, secret)
	if err != nil {
		return "", err
	}

	// 3. Encrypt: header || ciphertext, header authenticated as AAD
	header := h.marshal()
	ciphertext := gcm.Seal(nil, h.nonce, plaintext, header)
	blob := append(header, ciphertext...)

	return envelopeEncoding.EncodeToString(blob), nil
}

// Open implements [Cipher].
func (k *keyChainService) Open(blob string, secret string) ([]byte, error) {
	// 1. Decode base64 blob
	raw, err := envelopeEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %v", ErrMalformedEnvelope, err)
	}
	if len(raw) < headerSize+tagSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrMalformedEnvelope)
	}

	// 2. Parse and validate header
	h, err := parseEnvelopeHeader(raw)
	if err != nil {
		return nil, err
	}

	// 3. Derive key and build AES-GCM
	gcm, err := newGCM(h, secret)
	if err != nil {
		return nil, err
	}

	// 4. Decrypt and verify auth tag over header and ciphertext
	plaintext, err := gcm.Open(nil, h.nonce, raw[headerSize:], raw[:headerSize])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}

func newGCM(h envelopeHeader, secret string) (cipher.AEAD, error) {
	key, err := deriveKey(h, secret)
	if err != nil {
		return nil, err
	}
	defer zero(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
