package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/stretchr/testify/require"
)

// testClock is a settable clock shared by the vault and token services.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.UnixMilli(1_700_000_000_000)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *testClock) Advance(d time.Duration) {
	c.Set(c.Now().Add(d))
}

type testVault struct {
	*vaultService
	keys   crypto.KeyChainService
	tokens *sessionTokenService
	clock  *testClock
}

func newTestVault(t *testing.T) *testVault {
	t.Helper()

	keys, err := crypto.NewKeyChainService(crypto.KDFHKDF)
	require.NoError(t, err)

	return newTestVaultWithKeys(t, keys)
}

func newTestVaultWithKeys(t *testing.T, keys crypto.KeyChainService) *testVault {
	t.Helper()

	clock := newTestClock()
	ids := utils.NewUUIDGenerator()

	tokens, err := NewSessionTokenService(config.Session{
		SignKey:  "test-sign-key",
		Issuer:   "go-pass-vault-test",
		Duration: time.Hour,
	}, ids, logger.Nop())
	require.NoError(t, err)
	tokenSvc := tokens.(*sessionTokenService)
	tokenSvc.now = clock.Now

	vault := NewVaultService(keys, tokens, ids, logger.Nop()).(*vaultService)
	vault.now = clock.Now

	return &testVault{vaultService: vault, keys: keys, tokens: tokenSvc, clock: clock}
}

func newTestFolder(t *testing.T) store.Folder {
	t.Helper()
	folder, err := store.NewOSFolder(t.TempDir())
	require.NoError(t, err)
	return folder
}

// initVault initializes folder and returns its secret.
func initVault(t *testing.T, v *testVault, folder store.Folder) string {
	t.Helper()
	secret, err := v.InitializeVault(context.Background(), folder)
	require.NoError(t, err)
	return secret
}

func readArtifact(t *testing.T, folder store.Folder, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(folder.ID(), name))
	require.NoError(t, err)
	return data
}

func writeArtifact(t *testing.T, folder store.Folder, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(folder.ID(), name), data, 0o600))
}

func artifactExists(folder store.Folder, name string) bool {
	_, err := os.Stat(filepath.Join(folder.ID(), name))
	return err == nil
}

// faultyFolder wraps a real folder. While failWrites is set, WriteFile
// leaves a half-written temporary file behind, like an interrupted write,
// and fails without touching the target.
type faultyFolder struct {
	store.Folder

	mu         sync.Mutex
	failWrites bool
	writes     int
}

func (f *faultyFolder) setFailWrites(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWrites = fail
}

func (f *faultyFolder) WriteFile(ctx context.Context, name string, data []byte) error {
	f.mu.Lock()
	fail := f.failWrites
	f.writes++
	f.mu.Unlock()

	if !fail {
		return f.Folder.WriteFile(ctx, name, data)
	}

	stray := filepath.Join(f.ID(), "."+name+".interrupted.tmp")
	if err := os.WriteFile(stray, data[:len(data)/2], 0o600); err != nil {
		return err
	}
	return errDiskFull
}

var errDiskFull = errors.New("no space left on device")

// sequenceIDs returns the given identifiers in order, then falls back to
// UUIDs.
type sequenceIDs struct {
	mu   sync.Mutex
	ids  []string
	next *utils.UUIDGenerator
}

func (s *sequenceIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ids) == 0 {
		return s.next.Generate()
	}
	id := s.ids[0]
	s.ids = s.ids[1:]
	return id
}
