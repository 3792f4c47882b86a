package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by [KVStore.Read] when no value has ever
	// been written under the requested key. It is the adapter's explicit
	// "absent" signal and is not a storage failure.
	ErrKeyNotFound = errors.New("key not found")

	// ErrStorageRead is returned (wrapped) when a SQL-level read against
	// the kv table fails for any reason other than a missing key.
	ErrStorageRead = errors.New("storage read failed")

	// ErrStorageWrite is returned (wrapped) when persisting a value fails.
	ErrStorageWrite = errors.New("storage write failed")

	// ErrStorageDelete is returned (wrapped) when removing a value fails.
	ErrStorageDelete = errors.New("storage delete failed")

	// ErrCorruptRegistry is returned when the persisted user collection
	// exists but cannot be decoded. The registry refuses to guess and
	// surfaces the problem instead of silently reseeding over user data.
	ErrCorruptRegistry = errors.New("persisted user registry is corrupt")
)
