package cache

// ScopedKeyer wraps a Keyer with a prefix so several sites (or a staging
// and a production server) can share one Redis without colliding.
//
//	staging := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PageKey generates a prefixed page key.
func (k *ScopedKeyer) PageKey(opts PageKeyOpts) string {
	return k.prefix + k.inner.PageKey(opts)
}

// ExportKey generates a prefixed export key.
func (k *ScopedKeyer) ExportKey(opts PageKeyOpts, baseURL string) string {
	return k.prefix + k.inner.ExportKey(opts, baseURL)
}
