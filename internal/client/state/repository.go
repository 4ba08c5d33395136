// Package state is the persistence port for client-side session state:
// a small key-value store with a sqlite-backed implementation for durable
// state and an in-memory one for tests and ephemeral runs.
package state

import "context"

// Repository stores opaque state records by key. Get returns (nil, nil)
// when the key is absent; absence is never an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Replace atomically drops every record and writes the given one,
	// so stale leftovers from a previous session cannot survive.
	Replace(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
