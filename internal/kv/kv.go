// Package kv provides the flat string key-value store that backs all
// persisted state. Values are JSON documents serialized by the callers; the
// store itself offers no transactions and no merge primitive — every write
// replaces the full value for its key.
package kv

import "errors"

// ErrNotLoaded is returned when a store is used before Load or Init.
var ErrNotLoaded = errors.New("storage not loaded, run 'habito init' first")

// Store is a persistent string map. Implementations are not safe for
// concurrent use; the application is single-user and single-writer.
type Store interface {
	// Init creates the backing storage. It fails if storage already exists.
	Init() error
	// Load opens existing storage, failing if Init has never run.
	Load() error
	Close() error

	// Get returns the value for key, with ok=false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set writes the full value for key, replacing any prior value.
	Set(key, value string) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(key string) error
	// Keys lists every stored key.
	Keys() ([]string, error)

	// ConfigPath returns the location of the backing storage for diagnostics.
	ConfigPath() string
}
