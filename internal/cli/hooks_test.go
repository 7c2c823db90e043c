package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestLogHooks(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		level log.Level
		fire  func(h *logHooks)
		want  string // empty means no output
	}{
		{
			name:  "invalid stored value warns",
			level: log.InfoLevel,
			fire:  func(h *logHooks) { h.OnInvalidStored(ctx, "layout-profile", "retro") },
			want:  "ignoring invalid stored preference",
		},
		{
			name:  "variant fallback warns",
			level: log.InfoLevel,
			fire:  func(h *logHooks) { h.OnVariantFallback("hero", "Spinning", "HeroCentered") },
			want:  "unknown variant, using family default",
		},
		{
			name:  "render failure is an error",
			level: log.InfoLevel,
			fire: func(h *logHooks) {
				h.OnRenderComplete(ctx, "classic", "fresh-clean", 0, time.Millisecond, errors.New("boom"))
			},
			want: "render failed",
		},
		{
			name:  "cache hit hidden at info",
			level: log.InfoLevel,
			fire:  func(h *logHooks) { h.OnCacheHit(ctx, "page:abc") },
		},
		{
			name:  "cache hit shown at debug",
			level: log.DebugLevel,
			fire:  func(h *logHooks) { h.OnCacheHit(ctx, "page:abc") },
			want:  "cache hit",
		},
		{
			name:  "preference change at debug",
			level: log.DebugLevel,
			fire:  func(h *logHooks) { h.OnChange(ctx, "theme-palette", "fresh-clean", "premium-spa") },
			want:  "premium-spa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &logHooks{logger: newLogger(&buf, tt.level)}
			tt.fire(h)

			got := buf.String()
			if tt.want == "" {
				if got != "" {
					t.Errorf("unexpected output %q", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("output %q missing %q", got, tt.want)
			}
		})
	}
}
