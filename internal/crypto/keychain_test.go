package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"

	"golang.org/x/crypto/hkdf"
)

func newTestService(t *testing.T, kdf KDF) *keyChainService {
	t.Helper()
	svc, err := NewKeyChainService(kdf)
	if err != nil {
		t.Fatalf("NewKeyChainService error: %v", err)
	}
	return svc.(*keyChainService)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerateMasterSecret_LengthAndRandomness(t *testing.T) {
	svc := newTestService(t, KDFHKDF)

	s1, err := svc.GenerateMasterSecret()
	if err != nil {
		t.Fatalf("GenerateMasterSecret error: %v", err)
	}
	s2, err := svc.GenerateMasterSecret()
	if err != nil {
		t.Fatalf("GenerateMasterSecret error: %v", err)
	}

	if len(s1) != 64 {
		t.Fatalf("secret length = %d, want 64", len(s1))
	}
	if _, err := hex.DecodeString(s1); err != nil {
		t.Fatalf("secret is not hex: %v", err)
	}
	if s1 != strings.ToLower(s1) {
		t.Fatalf("secret must be lowercase hex, got %q", s1)
	}
	if s1 == s2 {
		t.Fatalf("expected secrets to differ, but they are equal")
	}
}

func TestGenerateMasterSecret_RandomSourceFailure(t *testing.T) {
	svc := newTestService(t, KDFHKDF)
	svc.random = failingReader{}

	if _, err := svc.GenerateMasterSecret(); err == nil {
		t.Fatalf("expected error from failing random source")
	}
}

func TestSecretsEqual_ExactMatchOnly(t *testing.T) {
	svc := newTestService(t, KDFHKDF)

	cases := []struct {
		candidate, stored string
		want              bool
	}{
		{"K1", "K1", true},
		{"", "", true},
		{"K1", "k1", false},
		{"K1 ", "K1", false},
		{"K1\n", "K1", false},
		{"K", "K1", false},
	}
	for _, c := range cases {
		if got := svc.SecretsEqual(c.candidate, c.stored); got != c.want {
			t.Errorf("SecretsEqual(%q, %q) = %v, want %v", c.candidate, c.stored, got, c.want)
		}
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	svc := newTestService(t, KDFHKDF)
	plain := []byte(`[{"id":"1","label":"Mail"}]`)

	blob, err := svc.Seal(plain, "K1")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	got, err := svc.Open(blob, "K1")
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if string(got) != string(plain) {
		t.Fatalf("round trip mismatch: got %q", got)
	}
}

func TestSealOpen_EmptyPlaintext(t *testing.T) {
	svc := newTestService(t, KDFHKDF)

	blob, err := svc.Seal(nil, "K1")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	got, err := svc.Open(blob, "K1")
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty plaintext, got %q", got)
	}
}

// TestSeal_KeyIsSecretExpandedWithoutStretching checks the cipher key is
// HKDF-SHA256 of the secret with the envelope salt and nothing else: a
// ciphertext built by hand with that key opens.
func TestSeal_KeyIsSecretExpandedWithoutStretching(t *testing.T) {
	svc := newTestService(t, KDFHKDF)

	blob, err := svc.Seal([]byte("payload"), "K1")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	raw, err := envelopeEncoding.DecodeString(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if raw[5] != byte(KDFHKDF) {
		t.Fatalf("kdf byte = %d, want %d", raw[5], KDFHKDF)
	}

	h, err := parseEnvelopeHeader(raw)
	if err != nil {
		t.Fatalf("parse header: %v", err)
	}
	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte("K1"), h.salt, []byte(hkdfInfo)), key); err != nil {
		t.Fatalf("hkdf: %v", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatalf("aes: %v", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		t.Fatalf("gcm: %v", err)
	}
	got, err := gcm.Open(nil, h.nonce, raw[headerSize:], raw[:headerSize])
	if err != nil {
		t.Fatalf("open with hkdf key: %v", err)
	}
	if string(got) != "payload" {
		t.Fatalf("unexpected plaintext %q", got)
	}
}

func TestOpen_WrongSecret(t *testing.T) {
	svc := newTestService(t, KDFHKDF)

	blob, err := svc.Seal([]byte("payload"), "right")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	got, err := svc.Open(blob, "wrong")
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no output on failure, got %q", got)
	}
}

func TestOpen_EveryByteFlipIsDetected(t *testing.T) {
	svc := newTestService(t, KDFHKDF)

	blob, err := svc.Seal([]byte(`[{"id":"x"}]`), "K1")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	for i := 0; i < len(blob); i++ {
		tampered := []byte(blob)
		tampered[i] ^= 0x01
		if got, err := svc.Open(string(tampered), "K1"); err == nil {
			t.Fatalf("flip at %d not detected, got plaintext %q", i, got)
		}
	}
}

func TestOpen_Truncated(t *testing.T) {
	svc := newTestService(t, KDFHKDF)

	blob, err := svc.Seal([]byte("payload payload payload"), "K1")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	for _, cut := range []int{1, 4, 8, len(blob) / 2, len(blob)} {
		if _, err := svc.Open(blob[:len(blob)-cut], "K1"); err == nil {
			t.Fatalf("truncation by %d bytes not detected", cut)
		}
	}
}

func TestOpen_HeaderChecks(t *testing.T) {
	svc := newTestService(t, KDFHKDF)

	blob, err := svc.Seal([]byte("payload"), "K1")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	raw, err := envelopeEncoding.DecodeString(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(b []byte)
		want   error
	}{
		{"bad magic", func(b []byte) { b[0] = 'X' }, ErrMalformedEnvelope},
		{"future version", func(b []byte) { b[4] = 2 }, ErrUnsupportedVersion},
		{"unknown kdf", func(b []byte) { b[5] = 9 }, ErrUnknownKDF},
		{"former argon2id kdf", func(b []byte) { b[5] = 2 }, ErrUnknownKDF},
		{"salt edited", func(b []byte) { b[20] ^= 0xFF }, ErrDecryptionFailed},
		{"nonce edited", func(b []byte) { b[headerSize-1] ^= 0xFF }, ErrDecryptionFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := append([]byte(nil), raw...)
			tt.mutate(b)
			_, err := svc.Open(envelopeEncoding.EncodeToString(b), "K1")
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestOpen_Garbage(t *testing.T) {
	svc := newTestService(t, KDFHKDF)

	for _, in := range []string{"", "not base64!", "AAAA", "UFZMVA=="} {
		if _, err := svc.Open(in, "K1"); !errors.Is(err, ErrMalformedEnvelope) {
			t.Errorf("Open(%q): expected ErrMalformedEnvelope, got %v", in, err)
		}
	}
}

func TestSeal_NonceRandomness(t *testing.T) {
	svc := newTestService(t, KDFHKDF)

	b1, err := svc.Seal([]byte("same"), "K1")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	b2, err := svc.Seal([]byte("same"), "K1")
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if b1 == b2 {
		t.Fatalf("expected different envelopes for two encryptions")
	}
}

func TestSeal_RandomSourceFailure(t *testing.T) {
	svc := newTestService(t, KDFHKDF)
	svc.random = failingReader{}

	if _, err := svc.Seal([]byte("x"), "K1"); err == nil {
		t.Fatalf("expected error from failing random source")
	}
}

func TestParseKDF(t *testing.T) {
	cases := map[string]KDF{
		"":         KDFHKDF,
		"hkdf":     KDFHKDF,
		"HKDF":     KDFHKDF,
		" hkdf ":   KDFHKDF,
	}
	for in, want := range cases {
		got, err := ParseKDF(in)
		if err != nil {
			t.Fatalf("ParseKDF(%q) error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseKDF(%q) = %s, want %s", in, got, want)
		}
	}

	for _, name := range []string{"scrypt", "argon2id", "argon2"} {
		if _, err := ParseKDF(name); !errors.Is(err, ErrUnknownKDF) {
			t.Fatalf("ParseKDF(%q): expected ErrUnknownKDF, got %v", name, err)
		}
	}
}

func TestNewKeyChainService_Validation(t *testing.T) {
	if _, err := NewKeyChainService(KDF(42)); !errors.Is(err, ErrUnknownKDF) {
		t.Fatalf("expected ErrUnknownKDF, got %v", err)
	}
	if _, err := NewKeyChainService(KDF(2)); !errors.Is(err, ErrUnknownKDF) {
		t.Fatalf("expected ErrUnknownKDF for kdf 2, got %v", err)
	}
	if _, err := NewKeyChainService(KDFHKDF); err != nil {
		t.Fatalf("NewKeyChainService(hkdf) error: %v", err)
	}
}
