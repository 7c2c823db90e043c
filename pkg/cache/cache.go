// Package cache stores rendered pages.
//
// A page is a pure function of the layout profile, the colour palette, the
// content version and the optional sections in use, so the rendered HTML
// can be reused across visitors who share those inputs. [Keyer] turns the
// inputs into a key; [Cache] stores the bytes.
//
// Backends:
//
//   - [NullCache]: caching disabled (the server default)
//   - [FileCache]: one file per entry, for the CLI and single-node servers
//   - [RedisCache]: shared cache for several server processes
//
// [Instrument] wraps any backend so hits, misses and sets reach the
// observability cache hooks.
//
// The package also carries the retry schedule ([Backoff], [Retryable]) that
// the network backends here and in storage use for their startup ping.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the entry for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by backends that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) error
}

// NullCache stores nothing, so every page is rendered fresh.
type NullCache struct{}

// NewNullCache returns a cache that always misses.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Clear(context.Context) error                              { return nil }
func (NullCache) Close() error                                             { return nil }

var _ Clearer = NullCache{}
