package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

// DB wraps the SQL connection of the folder-handle cache.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		db.logger.Err(err).Str("func", "DB.Migrate").Msg("folder handle cache migration failed")
		return err
	}
	if applied > 0 {
		db.logger.Info().Str("func", "DB.Migrate").Int("applied", applied).Msg("folder handle cache migrated")
	}
	return nil
}
