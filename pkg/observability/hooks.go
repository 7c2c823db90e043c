// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about visitor preferences, component resolution, page
// renders and the page cache.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so there are no import
// cycles and the libraries stay free of logging or metrics frameworks. The
// CLI bridges every category to charmbracelet/log.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPreferenceHooks(&myPreferenceHooks{})
//	    observability.SetResolverHooks(&myResolverHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Resolver().OnVariantFallback("hero", "HeroCarousel", "HeroCentered")
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Preference Hooks
// =============================================================================

// PreferenceHooks receives events from the per-visitor preference cells
// (layout profile and colour palette). key is the storage key, for example
// "layout-profile".
type PreferenceHooks interface {
	// OnRehydrate records the outcome of loading a persisted preference.
	// restored is false when the default was kept.
	OnRehydrate(ctx context.Context, key, value string, restored bool)

	// OnChange records an explicit change.
	OnChange(ctx context.Context, key, from, to string)

	// OnInvalidStored records a persisted value that is not a known id.
	// The value is ignored and the default applies.
	OnInvalidStored(ctx context.Context, key, value string)

	// OnStorageError records a failed read or write. op is "get" or "set".
	OnStorageError(ctx context.Context, op, key string, err error)
}

// =============================================================================
// Resolver Hooks
// =============================================================================

// ResolverHooks receives events from component resolution.
type ResolverHooks interface {
	// OnVariantFallback records a variant tag with no registered unit.
	// The family default was rendered instead.
	OnVariantFallback(family, requested, fallback string)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from page composition.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, profile, palette string)
	OnRenderComplete(ctx context.Context, profile, palette string, size int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPreferenceHooks is a no-op implementation of PreferenceHooks.
type NoopPreferenceHooks struct{}

func (NoopPreferenceHooks) OnRehydrate(context.Context, string, string, bool)     {}
func (NoopPreferenceHooks) OnChange(context.Context, string, string, string)      {}
func (NoopPreferenceHooks) OnInvalidStored(context.Context, string, string)       {}
func (NoopPreferenceHooks) OnStorageError(context.Context, string, string, error) {}

// NoopResolverHooks is a no-op implementation of ResolverHooks.
type NoopResolverHooks struct{}

func (NoopResolverHooks) OnVariantFallback(string, string, string) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, string) {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	preferenceHooks PreferenceHooks = NoopPreferenceHooks{}
	resolverHooks   ResolverHooks   = NoopResolverHooks{}
	renderHooks     RenderHooks     = NoopRenderHooks{}
	cacheHooks      CacheHooks      = NoopCacheHooks{}
	hooksMu         sync.RWMutex
)

// SetPreferenceHooks registers custom preference hooks.
// This should be called once at application startup.
func SetPreferenceHooks(h PreferenceHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		preferenceHooks = h
	}
}

// SetResolverHooks registers custom resolver hooks.
func SetResolverHooks(h ResolverHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		resolverHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Preferences returns the registered preference hooks.
func Preferences() PreferenceHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return preferenceHooks
}

// Resolver returns the registered resolver hooks.
func Resolver() ResolverHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return resolverHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	preferenceHooks = NoopPreferenceHooks{}
	resolverHooks = NoopResolverHooks{}
	renderHooks = NoopRenderHooks{}
	cacheHooks = NoopCacheHooks{}
}
