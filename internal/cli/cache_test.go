package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/petspa/salonsite/pkg/cache"
)

func TestCachePathCommand(t *testing.T) {
	isolateDirs(t)
	root := New(io.Discard, LogInfo).RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"cache", "path"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	want, _ := pageCacheDir()
	if got := strings.TrimSpace(out.String()); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}
}

func TestClearCache(t *testing.T) {
	isolateDirs(t)
	ctx := testContext()

	// Nothing cached yet.
	if err := clearCache(ctx, ""); err != nil {
		t.Fatalf("clear empty cache: %v", err)
	}

	dir, _ := pageCacheDir()
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := fc.Set(ctx, "page:abc", []byte("<html>"), time.Hour); err != nil {
		t.Fatal(err)
	}
	fc.Close()

	if err := clearCache(ctx, ""); err != nil {
		t.Fatalf("clearCache: %v", err)
	}

	fc, _ = cache.NewFileCache(dir)
	defer fc.Close()
	if _, hit, _ := fc.Get(ctx, "page:abc"); hit {
		t.Error("entry survived clear")
	}
}

func TestClearCacheDisabledInConfig(t *testing.T) {
	isolateDirs(t)
	cfgPath := filepath.Join(t.TempDir(), "salonsite.toml")
	if err := os.WriteFile(cfgPath, []byte("[cache]\nbackend = \"none\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := clearCache(testContext(), cfgPath); err != nil {
		t.Errorf("clearCache: %v", err)
	}
}
