package store

import (
	"context"
	"errors"
)

// ErrClosed is returned by operations on a closed KV.
var ErrClosed = errors.New("store: closed")

// KV is a durable string key-value medium, the equivalent of browser local
// storage. A missing key is reported with ok == false and a nil error.
type KV interface {
	// Get returns the value stored under key.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying resources.
	Close() error
}
