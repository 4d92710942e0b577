package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyMaterialProvider produces and checks master secrets.
//
// A master secret is a printable token drawn from the OS CSPRNG. It is both
// the authorization artifact of a vault folder and the input keying material
// of the [Cipher]; it is never stored encrypted.
type KeyMaterialProvider interface {
	// GenerateMasterSecret returns a fresh 256-bit random secret encoded as a
	// 64-character lowercase hex token. Two calls return distinct values with
	// overwhelming probability. Returns an error only if the random source
	// fails.
	GenerateMasterSecret() (string, error)

	// SecretsEqual reports whether candidate is exactly the stored secret.
	// No normalization or trimming is applied. The comparison runs in
	// constant time for inputs of equal length.
	SecretsEqual(candidate, stored string) bool
}

// Cipher is the authenticated cipher protecting the serialized credential
// list. Seal output is self-contained: salt, nonce and KDF id travel
// inside the blob, so Open needs only the blob and the secret.
type Cipher interface {
	// Seal encrypts plaintext under secret with AES-256-GCM and returns the
	// textual (base64) envelope.
	Seal(plaintext []byte, secret string) (string, error)

	// Open authenticates and decrypts an envelope produced by Seal.
	// It never returns partially decrypted or unauthenticated output: any
	// wrong secret, tampering or truncation yields an error wrapping one of
	// [ErrDecryptionFailed], [ErrMalformedEnvelope], [ErrUnsupportedVersion]
	// or [ErrUnknownKDF].
	Open(blob string, secret string) ([]byte, error)
}

// KeyChainService bundles the key material provider and the cipher.
type KeyChainService interface {
	KeyMaterialProvider
	Cipher
}
