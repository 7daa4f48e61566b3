package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when a key has no value.
var ErrNotFound = errors.New("storage: key not found")

// ErrStoreClosed is returned when operations are attempted on a closed store.
var ErrStoreClosed = errors.New("storage: store is closed")

// Store defines the interface for key-value persistence backends.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get retrieves the value for key.
	// Returns ErrNotFound if the key has no value.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set persists value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

// PersistenceError wraps a failed storage operation.
// Persistence failures are always non-fatal: the owning store keeps operating
// from its last known-good in-memory state and only durability across
// restarts is affected.
type PersistenceError struct {
	// Op is the failed operation ("get", "set", "delete").
	Op string

	// Key is the storage key involved.
	Key string

	// Err is the underlying backend error.
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
