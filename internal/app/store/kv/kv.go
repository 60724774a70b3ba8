// internal/app/store/kv/kv.go

// Package kv defines the key-value persistence boundary the record stores
// write through. One key holds one serialized collection (or one scalar
// preference); every Set is synchronously durable from the caller's point of
// view. Backends: in-memory (tests), SQLite file (default), MongoDB.
package kv

import "context"

// Store is the persistence collaborator. Implementations must make Set
// durable before returning; there is no batching or deferred flush.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set writes the value through synchronously, replacing any prior value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Reset clears every key in the store.
	Reset(ctx context.Context) error
	// Close releases the backend. The store is unusable afterwards.
	Close() error
}
