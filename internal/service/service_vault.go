package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/codec"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultService is the concrete implementation of VaultService.
//
// Writes to a folder (InitializeVault, Save) are serialized by a per-folder
// mutex keyed by the folder ID. Reads take no lock.
type vaultService struct {
	keys   crypto.KeyChainService
	tokens SessionTokenService
	ids    IDGenerator
	locks  *folderLocks
	now    func() time.Time
	logger *logger.Logger
}

// NewVaultService constructs a VaultService sealing with keys and issuing
// session tokens with tokens.
func NewVaultService(keys crypto.KeyChainService, tokens SessionTokenService, ids IDGenerator, logger *logger.Logger) VaultService {
	return &vaultService{
		keys:   keys,
		tokens: tokens,
		ids:    ids,
		locks:  newFolderLocks(),
		now:    time.Now,
		logger: logger,
	}
}

func (v *vaultService) HasMasterKey(ctx context.Context, folder store.Folder) (bool, error) {
	exists, err := folder.Exists(ctx, store.MasterKeyFile)
	if err != nil {
		return false, fmt.Errorf("check master key: %w", err)
	}
	return exists, nil
}

func (v *vaultService) InitializeVault(ctx context.Context, folder store.Folder) (string, error) {
	log := v.logger.ForFolder("vaultService.InitializeVault", folder.ID())

	unlock := v.locks.lock(folder.ID())
	defer unlock()

	exists, err := v.HasMasterKey(ctx, folder)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrAlreadyInitialized
	}

	secret, err := v.keys.GenerateMasterSecret()
	if err != nil {
		return "", fmt.Errorf("generate master secret: %w", err)
	}

	if err = folder.CreateFile(ctx, store.MasterKeyFile, []byte(secret)); err != nil {
		log.Err(err).Msg("master key was not written")
		return "", mapWriteError(err)
	}

	log.Info().Msg("vault initialized")
	return secret, nil
}

func (v *vaultService) RevealMasterKey(ctx context.Context, folder store.Folder) (string, error) {
	return v.readMasterKey(ctx, folder)
}

func (v *vaultService) Validate(ctx context.Context, folder store.Folder, candidate string) (bool, error) {
	stored, err := v.readMasterKey(ctx, folder)
	switch {
	case err == nil:
		if !v.keys.SecretsEqual(candidate, stored) {
			return false, nil
		}
	case !errors.Is(err, ErrNotInitialized):
		return false, err
	}

	blob, found, err := v.readData(ctx, folder)
	if err != nil {
		return false, err
	}
	if !found {
		return true, nil
	}

	if _, err = v.keys.Open(string(blob), candidate); err != nil {
		return false, nil
	}
	return true, nil
}

func (v *vaultService) Unlock(ctx context.Context, folder store.Folder, secret string) (models.CredentialList, error) {
	if err := v.checkSecret(ctx, folder, secret); err != nil {
		return nil, err
	}

	list, err := v.load(ctx, folder, secret)
	if err != nil {
		v.logger.Err(err).Str("func", "vaultService.Unlock").Str("folder", folder.ID()).Msg("vault could not be read")
		return nil, err
	}
	return list, nil
}

func (v *vaultService) Save(ctx context.Context, folder store.Folder, secret string, list models.CredentialList) error {
	log := v.logger.ForFolder("vaultService.Save", folder.ID())

	unlock := v.locks.lock(folder.ID())
	defer unlock()

	if err := v.checkSecret(ctx, folder, secret); err != nil {
		return err
	}

	plaintext, err := codec.Encode(list)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	blob, err := v.keys.Seal(plaintext, secret)
	if err != nil {
		return fmt.Errorf("seal credentials: %w", err)
	}

	if err = folder.WriteFile(ctx, store.DataFile, []byte(blob)); err != nil {
		log.Err(err).Msg("data artifact was not replaced")
		return mapWriteError(err)
	}

	log.Debug().Int("records", len(list)).Msg("vault saved")
	return nil
}

func (v *vaultService) Open(ctx context.Context, folder store.Folder, secret string) (*VaultSession, error) {
	list, err := v.Unlock(ctx, folder, secret)
	if err != nil {
		return nil, err
	}

	token, err := v.tokens.Issue(folder.ID())
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	v.logger.Info().Str("func", "vaultService.Open").Str("folder", folder.ID()).
		Time("expires", token.ExpiresAtTime()).Msg("vault session opened")

	return newVaultSession(v, folder, secret, list, token), nil
}

// checkSecret compares secret with the folder's master key.
func (v *vaultService) checkSecret(ctx context.Context, folder store.Folder, secret string) error {
	stored, err := v.readMasterKey(ctx, folder)
	if err != nil {
		return err
	}
	if !v.keys.SecretsEqual(secret, stored) {
		return ErrInvalidSecret
	}
	return nil
}

// readMasterKey returns the master key content exactly as stored.
func (v *vaultService) readMasterKey(ctx context.Context, folder store.Folder) (string, error) {
	data, err := folder.ReadFile(ctx, store.MasterKeyFile)
	if errors.Is(err, store.ErrArtifactNotFound) {
		return "", ErrNotInitialized
	}
	if err != nil {
		return "", fmt.Errorf("read master key: %w", err)
	}
	return string(data), nil
}

// readData returns the data artifact and whether it holds anything. An absent
// or zero-length artifact is reported as not found.
func (v *vaultService) readData(ctx context.Context, folder store.Folder) ([]byte, bool, error) {
	data, err := folder.ReadFile(ctx, store.DataFile)
	if errors.Is(err, store.ErrArtifactNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read vault data: %w", err)
	}

	return data, len(data) > 0, nil
}

func (v *vaultService) load(ctx context.Context, folder store.Folder, secret string) (models.CredentialList, error) {
	blob, found, err := v.readData(ctx, folder)
	if err != nil {
		return nil, err
	}
	if !found {
		return models.CredentialList{}, nil
	}

	plaintext, err := v.keys.Open(string(blob), secret)
	if err != nil {
		return nil, mapOpenError(err)
	}

	list, err := codec.Decode(plaintext)
	if err != nil {
		return nil, mapOpenError(err)
	}
	return list, nil
}

// folderLocks hands out one mutex per folder ID.
type folderLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newFolderLocks() *folderLocks {
	return &folderLocks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex of id and returns its release function.
func (f *folderLocks) lock(id string) func() {
	f.mu.Lock()
	m, ok := f.locks[id]
	if !ok {
		m = &sync.Mutex{}
		f.locks[id] = m
	}
	f.mu.Unlock()

	m.Lock()
	return m.Unlock
}
