package cache

import (
	"context"
	"time"

	"github.com/petspa/salonsite/pkg/observability"
)

// Instrument wraps c so every Get and Set reports to the registered cache
// hooks. Clear is forwarded when c supports it.
func Instrument(c Cache) Cache {
	return &instrumented{Cache: c}
}

type instrumented struct {
	Cache
}

func (i *instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := i.Cache.Get(ctx, key)
	if err == nil {
		if ok {
			observability.Cache().OnCacheHit(ctx, key)
		} else {
			observability.Cache().OnCacheMiss(ctx, key)
		}
	}
	return data, ok, err
}

func (i *instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	err := i.Cache.Set(ctx, key, data, ttl)
	if err == nil {
		observability.Cache().OnCacheSet(ctx, key, len(data))
	}
	return err
}

func (i *instrumented) Clear(ctx context.Context) error {
	if c, ok := i.Cache.(Clearer); ok {
		return c.Clear(ctx)
	}
	return nil
}
