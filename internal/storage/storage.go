// Package storage persists small per-session documents such as the cart line
// list and the selected UI language.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written or has expired.
var ErrNotFound = errors.New("storage: key not found")

// Store is a key/value store for serialized session documents.
type Store interface {
	// Get returns the raw value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
