package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

type folderHandleRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewFolderHandleRepository returns the SQLite-backed [FolderHandleRepository].
func NewFolderHandleRepository(db *DB, logger *logger.Logger) FolderHandleRepository {
	return &folderHandleRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *folderHandleRepository) SaveHandle(ctx context.Context, key, path string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertHandleQuery(key, path, r.now())
	if err != nil {
		log.Err(err).Str("func", "folderHandleRepository.SaveHandle").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "folderHandleRepository.SaveHandle").
			Str("handle_key", key).
			Msg("failed to upsert folder handle")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *folderHandleRepository) GetHandle(ctx context.Context, key string) (models.FolderHandle, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectHandleQuery(key)
	if err != nil {
		log.Err(err).Str("func", "folderHandleRepository.GetHandle").Msg("failed to build select query")
		return models.FolderHandle{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		handle    models.FolderHandle
		updatedAt int64
	)
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&handle.Key, &handle.Path, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FolderHandle{}, fmt.Errorf("%w: %s", ErrHandleNotFound, key)
		}
		log.Err(err).
			Str("func", "folderHandleRepository.GetHandle").
			Str("handle_key", key).
			Msg("failed to scan folder handle row")
		return models.FolderHandle{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	handle.UpdatedAt = time.UnixMilli(updatedAt)

	return handle, nil
}

func (r *folderHandleRepository) DeleteHandle(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteHandleQuery(key)
	if err != nil {
		log.Err(err).Str("func", "folderHandleRepository.DeleteHandle").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "folderHandleRepository.DeleteHandle").
			Str("handle_key", key).
			Msg("failed to delete folder handle")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
