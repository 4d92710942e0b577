package crypto

import "errors"

// Errors returned by [Cipher.Open]. The vault service never surfaces them
// directly; it translates them into its own error taxonomy.
var (
	// ErrDecryptionFailed is returned when GCM authentication fails: the
	// secret is wrong or the ciphertext/header was modified.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrMalformedEnvelope is returned when the blob is not valid base64, is
	// truncated, or carries the wrong magic.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrUnsupportedVersion is returned when the envelope format version is
	// newer (or older) than this build understands.
	ErrUnsupportedVersion = errors.New("unsupported envelope version")

	// ErrUnknownKDF is returned when the envelope, or the configuration,
	// names a key-derivation function this build does not implement.
	ErrUnknownKDF = errors.New("unknown key derivation function")
)
