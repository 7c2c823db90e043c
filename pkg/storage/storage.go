// Package storage provides the key/value persistence behind visitor
// preferences (the active layout profile and colour palette).
//
// It plays the role browser local storage plays for a client-rendered site:
// small string values under well-known keys, read once per session and
// written on every explicit change. Backends:
//
//   - [Memory]: process-local, for tests and single-instance deployments
//   - [File]: one JSON file per key, used by the CLI
//   - [Redis]: shared storage for multi-instance deployments
//   - [Mongo]: document storage when MongoDB is already part of the stack
//
// [Scoped] prefixes every key so one backend can hold many visitors.
//
// # Usage
//
//	store := storage.NewMemory()
//	visitor := storage.Scoped(store, "visitor:"+id+":")
//
//	_ = visitor.Set(ctx, "layout-profile", "bento")
//	v, ok, err := visitor.Get(ctx, "layout-profile")
package storage

import (
	"context"
	"errors"
)

// Sentinel errors for storage operations.
var (
	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("storage closed")

	// ErrInvalidKey is returned for empty keys.
	ErrInvalidKey = errors.New("invalid storage key")
)

// Storage is a string key/value store.
//
// Get reports a missing key as ok=false with a nil error; errors are
// reserved for backend failures. Implementations must be safe for
// concurrent use.
type Storage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func checkKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	return nil
}
