// Package kv provides access to the platform's key-value record store.
// All platform records (job positions, profiles, applications) are JSON
// values stored under string keys in a single Postgres table.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no record exists under the key.
var ErrNotFound = errors.New("kv: key not found")

// Store is the generic get/set interface the scoring pipeline consumes.
// Implementations must provide atomic get/set per key; no cross-key
// transactions are assumed.
type Store interface {
	// Get returns the JSON value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any existing value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the record under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// GetByPrefix returns all records whose key starts with prefix.
	GetByPrefix(ctx context.Context, prefix string) (map[string][]byte, error)
}
