package store

import (
	"context"

	"github.com/kisaanlabs/kisaan-setu/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KVStore is the durable key-to-string storage adapter used by the session
// manager and the user registry. Values are opaque serialized strings; the
// adapter never inspects them.
//
// Read reports a missing key with [ErrKeyNotFound], never with a hard
// failure. Write overwrites any existing value. Delete of an absent key is
// not an error.
type KVStore interface {
	Read(ctx context.Context, key string) (string, error)
	Write(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// UserRegistry is the collection of all registered user records, held in
// memory and persisted as a single unit through the [KVStore].
//
// The registry itself performs no locking: it is owned by the session
// manager, which serializes every mutation.
type UserRegistry interface {
	// LoadOrSeed loads the persisted collection, seeding and persisting the
	// demo accounts when no collection has been stored yet.
	LoadOrSeed(ctx context.Context) error

	// FindByCredentials matches name case-insensitively and password
	// byte-exactly. The second return value reports whether a match exists.
	FindByCredentials(name, password string) (models.UserRecord, bool)

	// ExistsByNameOrEmail reports whether any record collides with name or
	// email, both compared case-insensitively.
	ExistsByNameOrEmail(name, email string) bool

	// Insert appends record and re-persists the full collection. The caller
	// must have already checked ExistsByNameOrEmail; Insert does not.
	Insert(ctx context.Context, record models.UserRecord) error

	// Records returns a copy of the current collection.
	Records() []models.UserRecord
}
