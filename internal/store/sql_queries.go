// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const folderHandlesTable = "folder_handles"

// sqlite is the statement builder for the handle cache: SQLite takes "?"
// placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildUpsertHandleQuery builds an INSERT that replaces the path of an
// existing key instead of failing on the primary-key conflict.
func buildUpsertHandleQuery(key, path string, updatedAt time.Time) (string, []any, error) {
	return sqlite.
		Insert(folderHandlesTable).
		Columns("handle_key", "path", "updated_at").
		Values(key, path, updatedAt.UnixMilli()).
		Suffix("ON CONFLICT (handle_key) DO UPDATE SET path = excluded.path, updated_at = excluded.updated_at").
		ToSql()
}

func buildSelectHandleQuery(key string) (string, []any, error) {
	return sqlite.
		Select("handle_key", "path", "updated_at").
		From(folderHandlesTable).
		Where(sq.Eq{"handle_key": key}).
		ToSql()
}

func buildDeleteHandleQuery(key string) (string, []any, error) {
	return sqlite.
		Delete(folderHandlesTable).
		Where(sq.Eq{"handle_key": key}).
		ToSql()
}
