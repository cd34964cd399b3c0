package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("key not found")

// Provider is a durable key-value capability. Each Set replaces the whole value of one key
// atomically; there is no multi-key transaction.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Key-value access
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Remove deletes the key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
	// Keys returns every stored key in no particular order.
	Keys(ctx context.Context) ([]string, error)

	// Utils
	GetConfigPath() string
}
