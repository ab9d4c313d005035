// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const (
	kvTable        = "kv"
	kvKeyCol       = "key"
	kvValueCol     = "value"
	kvUpdatedAtCol = "updated_at"
)

// sqliteKeyValue is the sqlite-backed [KeyValueStore]. Every key is one row
// of the kv table; Set is a single upsert so a value is never half written.
type sqliteKeyValue struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteKeyValue wraps an already migrated sqlite DB.
func NewSQLiteKeyValue(db *DB, logger *logger.Logger) KeyValueStore {
	return &sqliteKeyValue{db: db, logger: logger}
}

func (s *sqliteKeyValue) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(kvValueCol).
		From(kvTable).
		Where(sq.Eq{kvKeyCol: key}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqliteKeyValue.Get").Msg("error building query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sqliteKeyValue.Get").Str("key", key).Msg("error reading value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteKeyValue) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert(kvTable).
		Columns(kvKeyCol, kvValueCol, kvUpdatedAtCol).
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqliteKeyValue.Set").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteKeyValue.Set").Str("key", key).Msg("error writing value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValue) Close() error {
	return s.db.Close()
}
