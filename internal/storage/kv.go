// Package storage is the load/save boundary to durable local storage.
//
// Persisted state lives in a local key-value byte store: the full todo
// collection is serialized as one JSON array under a single fixed key and
// rewritten in full after every mutation. Two backends implement the store,
// a plain file per key (the default) and a SQLite kv table.
package storage

import "errors"

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// KV is a minimal synchronous key-value byte store.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}
