// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kisaanlabs/kisaan-setu/internal/logger"
)

type kvStore struct {
	db  *DB
	log *logger.Logger
}

// NewKVStore returns a KVStore backed by the kv table of the given database.
func NewKVStore(db *DB, log *logger.Logger) KVStore {
	return &kvStore{db: db, log: log}
}

func (s *kvStore) Read(ctx context.Context, key string) (string, error) {
	query, args, err := buildReadQuery(key)
	if err != nil {
		s.log.Err(err).Str("func", "Read").Msg("error occurred during query building")
		return "", fmt.Errorf("%w: %v", ErrStorageRead, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		s.log.Err(err).Str("func", "Read").Str("key", key).Msg("error occurred during row scan")
		return "", fmt.Errorf("%w: %v", ErrStorageRead, err)
	}

	return value, nil
}

func (s *kvStore) Write(ctx context.Context, key string, value string) error {
	query, args, err := buildUpsertQuery(key, value)
	if err != nil {
		s.log.Err(err).Str("func", "Write").Msg("error occurred during query building")
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.log.Err(err).Str("func", "Write").Str("key", key).Msg("error occurred during query execution")
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	return nil
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteQuery(key)
	if err != nil {
		s.log.Err(err).Str("func", "Delete").Msg("error occurred during query building")
		return fmt.Errorf("%w: %v", ErrStorageDelete, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.log.Err(err).Str("func", "Delete").Str("key", key).Msg("error occurred during query execution")
		return fmt.Errorf("%w: %v", ErrStorageDelete, err)
	}

	return nil
}
