package store

import (
	"context"
	"fmt"

	"github.com/kisaanlabs/kisaan-setu/internal/config"
	"github.com/kisaanlabs/kisaan-setu/internal/logger"
)

// Storages bundles the persistence layer handed to the services.
type Storages struct {
	KV    KVStore
	Users UserRegistry
}

// NewStorages opens the local SQLite database, runs migrations and wires the
// key-value adapter and the user registry on top of it.
func NewStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to local database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	kv := NewKVStore(db, log)

	return &Storages{
		KV:    kv,
		Users: NewUserRegistry(kv, log),
	}, nil
}
