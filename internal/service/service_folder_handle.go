package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// folderHandleService remembers the last opened vault folder under a single
// handle key. It is a convenience cache: losing an entry never affects the
// vault itself.
type folderHandleService struct {
	repo       store.FolderHandleRepository
	key        string
	openFolder func(path string) (store.Folder, error)
	logger     *logger.Logger
}

// NewFolderHandleService constructs a FolderHandleService over repo. A nil
// repo yields a service whose every call fails with ErrHandleCacheDisabled.
func NewFolderHandleService(repo store.FolderHandleRepository, cfg config.Vault, logger *logger.Logger) FolderHandleService {
	key := cfg.HandleKey
	if key == "" {
		key = config.DefaultHandleKey
	}

	return &folderHandleService{
		repo:       repo,
		key:        key,
		openFolder: store.NewOSFolder,
		logger:     logger,
	}
}

func (f *folderHandleService) Remember(ctx context.Context, folder store.Folder) error {
	if f.repo == nil {
		return ErrHandleCacheDisabled
	}

	if err := f.repo.SaveHandle(ctx, f.key, folder.ID()); err != nil {
		return fmt.Errorf("remember folder: %w", err)
	}
	return nil
}

// Restore re-opens the remembered folder. An entry whose directory no longer
// resolves is deleted and reported as ErrFolderNotRemembered.
func (f *folderHandleService) Restore(ctx context.Context) (store.Folder, error) {
	if f.repo == nil {
		return nil, ErrHandleCacheDisabled
	}

	handle, err := f.repo.GetHandle(ctx, f.key)
	if errors.Is(err, store.ErrHandleNotFound) {
		return nil, ErrFolderNotRemembered
	}
	if err != nil {
		return nil, fmt.Errorf("restore folder: %w", err)
	}

	folder, err := f.openFolder(handle.Path)
	if errors.Is(err, store.ErrFolderNotFound) || errors.Is(err, store.ErrNotADirectory) {
		f.logger.Warn().Str("func", "folderHandleService.Restore").Str("folder", handle.Path).
			Msg("remembered folder no longer resolves, forgetting it")
		if delErr := f.repo.DeleteHandle(ctx, f.key); delErr != nil {
			return nil, fmt.Errorf("forget stale folder: %w", delErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrFolderNotRemembered, err)
	}
	if err != nil {
		return nil, fmt.Errorf("open remembered folder: %w", err)
	}
	return folder, nil
}

func (f *folderHandleService) Forget(ctx context.Context) error {
	if f.repo == nil {
		return ErrHandleCacheDisabled
	}

	if err := f.repo.DeleteHandle(ctx, f.key); err != nil {
		return fmt.Errorf("forget folder: %w", err)
	}
	return nil
}
