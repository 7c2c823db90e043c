package storage

import "context"

// scoped prefixes every key before delegating.
type scoped struct {
	inner  Storage
	prefix string
}

// Scoped returns a view of inner whose keys are prefixed with prefix.
// Closing the view does not close inner; the backend is owned by whoever
// created it.
func Scoped(inner Storage, prefix string) Storage {
	return &scoped{inner: inner, prefix: prefix}
}

// VisitorPrefix is the key namespace for one site visitor.
func VisitorPrefix(visitorID string) string {
	return "visitor:" + visitorID + ":"
}

func (s *scoped) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *scoped) Set(ctx context.Context, key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	return s.inner.Set(ctx, s.prefix+key, value)
}

func (s *scoped) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

func (s *scoped) Close() error { return nil }
