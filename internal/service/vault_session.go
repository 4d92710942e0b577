// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultSession is an unlocked vault. It owns the only writable copy of the
// credential list and the master secret; both are dropped by Lock.
//
// Operations are serialized by the session mutex. A mutation is applied to
// the in-memory list only after the vault has been saved, so on any save
// failure the list keeps its previous value.
type VaultSession struct {
	mu sync.Mutex

	vault  *vaultService
	folder store.Folder
	secret string
	list   models.CredentialList
	token  models.SessionToken
	closed bool
}

func newVaultSession(vault *vaultService, folder store.Folder, secret string, list models.CredentialList, token models.SessionToken) *VaultSession {
	return &VaultSession{
		vault:  vault,
		folder: folder,
		secret: secret,
		list:   list.Clone(),
		token:  token,
	}
}

// FolderID returns the ID of the unlocked folder.
func (s *VaultSession) FolderID() string {
	return s.folder.ID()
}

// Token returns the session capability token issued at unlock.
func (s *VaultSession) Token() models.SessionToken {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// List returns a copy of the credential list in insertion order.
func (s *VaultSession) List() (models.CredentialList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAlive(); err != nil {
		return nil, err
	}
	return s.list.Clone(), nil
}

// Get returns the credential with the given id.
func (s *VaultSession) Get(id string) (models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAlive(); err != nil {
		return models.Credential{}, err
	}

	i := s.list.IndexOf(id)
	if i < 0 {
		return models.Credential{}, ErrCredentialNotFound
	}
	return s.list[i], nil
}

// Add appends a new credential with a fresh identifier and saves the vault.
func (s *VaultSession) Add(ctx context.Context, draft models.CredentialDraft) (models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAlive(); err != nil {
		return models.Credential{}, err
	}

	id := s.vault.ids.Generate()
	for s.list.Contains(id) {
		id = s.vault.ids.Generate()
	}

	now := s.vault.now().UnixMilli()
	credential := models.Credential{
		ID:        id,
		Label:     draft.Label,
		Account:   draft.Account,
		Password:  draft.Password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	next := append(s.list.Clone(), credential)
	if err := s.commit(ctx, next); err != nil {
		return models.Credential{}, err
	}
	return credential, nil
}

// Update replaces the label, account and password of the credential with
// the given id. The identifier and creation time are kept.
func (s *VaultSession) Update(ctx context.Context, id string, draft models.CredentialDraft) (models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAlive(); err != nil {
		return models.Credential{}, err
	}

	i := s.list.IndexOf(id)
	if i < 0 {
		return models.Credential{}, ErrCredentialNotFound
	}

	updated := s.list[i]
	updated.Label = draft.Label
	updated.Account = draft.Account
	updated.Password = draft.Password
	updated.UpdatedAt = max(s.vault.now().UnixMilli(), updated.UpdatedAt)

	next := s.list.Clone()
	next[i] = updated
	if err := s.commit(ctx, next); err != nil {
		return models.Credential{}, err
	}
	return updated, nil
}

// Remove deletes the credential with the given id and saves the vault.
func (s *VaultSession) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAlive(); err != nil {
		return err
	}

	if !s.list.Contains(id) {
		return ErrCredentialNotFound
	}
	return s.commit(ctx, s.list.Without(id))
}

// Save writes the current list again. It is the retry path after a
// mutation failed with ErrWriteFailed.
func (s *VaultSession) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAlive(); err != nil {
		return err
	}
	return s.commit(ctx, s.list)
}

// Lock drops the secret and the decrypted list. Every later call fails with
// ErrSessionClosed. Locking twice is a no-op.
func (s *VaultSession) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lock()
}

// Closed reports whether the session has been locked.
func (s *VaultSession) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// LockIfExpired locks the session once its token no longer verifies and
// reports whether the session is locked.
func (s *VaultSession) LockIfExpired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return true
	}
	return s.checkAlive() != nil
}

// checkAlive fails on a locked session and locks a session whose token has
// expired. Callers hold s.mu.
func (s *VaultSession) checkAlive() error {
	if s.closed {
		return ErrSessionClosed
	}

	if _, err := s.vault.tokens.Verify(s.token.String()); err != nil {
		s.lock()
		s.vault.logger.Info().Str("func", "VaultSession.checkAlive").Str("folder", s.folder.ID()).
			Err(err).Msg("vault session locked")
		if errors.Is(err, ErrSessionExpired) {
			return ErrSessionExpired
		}
		return ErrSessionInvalid
	}
	return nil
}

// commit saves next and adopts it as the session list on success.
func (s *VaultSession) commit(ctx context.Context, next models.CredentialList) error {
	if err := s.vault.Save(ctx, s.folder, s.secret, next); err != nil {
		return err
	}
	s.list = next
	return nil
}

func (s *VaultSession) lock() {
	if s.closed {
		return
	}
	s.closed = true
	s.secret = ""
	clear(s.list)
	s.list = nil
	s.token = models.SessionToken{}
}

// ExpiresAt returns the session token expiry; zero once locked.
func (s *VaultSession) ExpiresAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token.ExpiresAtTime()
}
