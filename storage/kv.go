// Package storage provides the durable key-value store backing the journal,
// check-in, and locale components. Each component owns a distinct key; no two
// components share one.
package storage

import "context"

// ErrNotFound is returned by Get when the key has never been written.
type notFoundError struct{}

func (notFoundError) Error() string { return "storage: key not found" }

var ErrNotFound error = notFoundError{}

// Store is a durable key-value store. Values are opaque serialized records.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
