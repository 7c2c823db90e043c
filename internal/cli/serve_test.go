package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/petspa/salonsite/pkg/cache"
	"github.com/petspa/salonsite/pkg/config"
)

func TestPageKeyer(t *testing.T) {
	opts := cache.PageKeyOpts{Profile: "bento", Palette: "premium-spa", ContentVersion: "v1"}
	plain := cache.NewDefaultKeyer().PageKey(opts)

	if got := pageKeyer(config.Cache{}).PageKey(opts); got != plain {
		t.Errorf("unprefixed key = %q, want %q", got, plain)
	}

	staging := pageKeyer(config.Cache{Prefix: "staging:"}).PageKey(opts)
	if staging != "staging:"+plain {
		t.Errorf("prefixed key = %q, want staging:%s", staging, plain)
	}
	prod := pageKeyer(config.Cache{Prefix: "prod:"}).PageKey(opts)
	if prod == staging {
		t.Error("deployments with different prefixes share a key")
	}
}

func TestPageKeyerSharedBackend(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	opts := cache.PageKeyOpts{Profile: "classic", Palette: "fresh-clean"}

	staging := pageKeyer(config.Cache{Prefix: "staging:"})
	prod := pageKeyer(config.Cache{Prefix: "prod:"})
	if err := fc.Set(ctx, staging.PageKey(opts), []byte("staging page"), time.Hour); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := fc.Get(ctx, prod.PageKey(opts)); hit {
		t.Error("production read the staging page")
	}
}

func TestRunServeRejectsBadPrefix(t *testing.T) {
	isolateDirs(t)
	path := filepath.Join(t.TempDir(), "salonsite.toml")
	if err := os.WriteFile(path, []byte("[cache]\nprefix = \"a b\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	err := c.runServe(testContext(), serveOptions{configPath: path})
	if err == nil || !strings.Contains(err.Error(), "Cache.Prefix") {
		t.Errorf("err = %v, want Cache.Prefix validation error", err)
	}
}
