package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
)

type Services struct {
	VaultService        VaultService
	SessionTokenService SessionTokenService
	FolderHandleService FolderHandleService

	checkInterval time.Duration
	logger        *logger.Logger
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	kdf, err := crypto.ParseKDF(cfg.Vault.KDF)
	if err != nil {
		return nil, fmt.Errorf("vault kdf: %w", err)
	}

	keys, err := crypto.NewKeyChainService(kdf)
	if err != nil {
		return nil, fmt.Errorf("vault cipher: %w", err)
	}

	ids := utils.NewUUIDGenerator()
	tokens, err := NewSessionTokenService(cfg.Session, ids, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		VaultService:        NewVaultService(keys, tokens, ids, logger),
		SessionTokenService: tokens,
		FolderHandleService: NewFolderHandleService(storages.FolderHandles, cfg.Vault, logger),
		checkInterval:       cfg.Session.CheckInterval,
		logger:              logger,
	}, nil
}

// AutoLock returns a worker that locks session once its token expires,
// checking at the configured session check interval.
func (s *Services) AutoLock(session *VaultSession) workers.Worker {
	return workers.NewSessionAutoLock(session, s.checkInterval, s.logger)
}

// Workers bundles an auto-lock worker for each session. Run returns once
// every session is locked or ctx is done.
func (s *Services) Workers(sessions ...*VaultSession) *workers.Workers {
	list := make([]workers.Worker, 0, len(sessions))
	for _, session := range sessions {
		list = append(list, s.AutoLock(session))
	}
	return workers.NewWorkers(list...)
}
