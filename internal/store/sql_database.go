// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

package store

import (
	"database/sql"

	"github.com/kisaanlabs/kisaan-setu/internal/logger"
	"github.com/kisaanlabs/kisaan-setu/migrations"
)

// DB wraps the SQLite connection handed to the key/value store.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
