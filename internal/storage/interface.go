// Package storage defines the durable key-value record used for app state
// and the shared cross-process slot used for the widget handoff.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KV.Get when no value exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// KV is a single-record durable key-value store. Both operations are safe
// for concurrent use.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Slot is a shared cross-process storage area readable by an external
// presentation surface. Writes overwrite the whole record; the slot is
// never read back by this process.
type Slot interface {
	Write(ctx context.Context, namespace, key string, blob []byte) error
}
