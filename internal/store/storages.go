package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storages groups the persistent repositories of the module. Vault folders
// themselves are not listed here: they are opened per call with
// [NewOSFolder].
type Storages struct {
	// FolderHandles is the remembered-folder cache. It is nil when no cache
	// DSN is configured.
	FolderHandles FolderHandleRepository

	db *DB
}

// NewStorages opens the folder-handle cache configured in cfg and runs its
// migrations. An empty DSN disables the cache and is not an error.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	if cfg.HandleCacheDSN == "" {
		logger.Debug().Str("func", "NewStorages").Msg("folder handle cache disabled")
		return &Storages{}, nil
	}

	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.HandleCacheDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		FolderHandles: NewFolderHandleRepository(db, logger),
		db:            db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
