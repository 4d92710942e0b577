package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// sqliteParams are appended to a plain file DSN. A busy timeout lets two
// processes share the cache file without failing on a locked database.
const sqliteParams = "_busy_timeout=5000&_journal_mode=WAL"

// NewConnectSQLite opens the SQLite database file at path, creating the file
// and its directory if needed, and pings it.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	if err := ensureDBFile(path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("dsn", path).Msg("error preparing database file")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", path).Msg("connected to folder handle cache")

	return &DB{DB: conn, logger: log}, nil
}

func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return "file:" + path + "?" + sqliteParams
}

// ensureDBFile creates an empty 0600 database file unless one exists.
func ensureDBFile(path string) error {
	if strings.HasPrefix(path, "file:") {
		return nil
	}

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat DB file: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("error creating DB directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("error creating DB file: %w", err)
	}
	return f.Close()
}
