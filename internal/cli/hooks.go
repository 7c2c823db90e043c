package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/petspa/salonsite/pkg/observability"
)

// logHooks forwards observability events to the logger. Routine events go
// to debug; anything that means a degraded result is a warning.
type logHooks struct {
	logger *log.Logger
}

func installHooks(l *log.Logger) {
	h := &logHooks{logger: l}
	observability.SetPreferenceHooks(h)
	observability.SetResolverHooks(h)
	observability.SetRenderHooks(h)
	observability.SetCacheHooks(h)
}

func (h *logHooks) OnRehydrate(_ context.Context, key, value string, restored bool) {
	h.logger.Debug("preference rehydrated", "key", key, "value", value, "restored", restored)
}

func (h *logHooks) OnChange(_ context.Context, key, from, to string) {
	h.logger.Debug("preference changed", "key", key, "from", from, "to", to)
}

func (h *logHooks) OnInvalidStored(_ context.Context, key, value string) {
	h.logger.Warn("ignoring invalid stored preference", "key", key, "value", value)
}

func (h *logHooks) OnStorageError(_ context.Context, op, key string, err error) {
	h.logger.Warn("preference storage failed", "op", op, "key", key, "err", err)
}

func (h *logHooks) OnVariantFallback(family, requested, fallback string) {
	h.logger.Warn("unknown variant, using family default", "family", family, "requested", requested, "fallback", fallback)
}

func (h *logHooks) OnRenderStart(_ context.Context, profile, palette string) {
	h.logger.Debug("render start", "profile", profile, "palette", palette)
}

func (h *logHooks) OnRenderComplete(_ context.Context, profile, palette string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("render failed", "profile", profile, "palette", palette, "err", err)
		return
	}
	h.logger.Debug("render done", "profile", profile, "palette", palette, "bytes", size, "duration", d.Round(time.Microsecond))
}

func (h *logHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("cache hit", "key", key)
}

func (h *logHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("cache miss", "key", key)
}

func (h *logHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("cache set", "key", key, "bytes", size)
}
