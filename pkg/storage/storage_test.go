package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// testStorage runs the behaviour every backend must share.
func testStorage(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	// Missing key is a miss, not an error.
	v, ok, err := s.Get(ctx, "layout-profile")
	if err != nil {
		t.Fatalf("Get missing: %v", err)
	}
	if ok || v != "" {
		t.Fatalf("Get missing = %q, %v", v, ok)
	}

	if err := s.Set(ctx, "layout-profile", "bento"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err = s.Get(ctx, "layout-profile")
	if err != nil || !ok || v != "bento" {
		t.Fatalf("Get after Set = %q, %v, %v", v, ok, err)
	}

	// Overwrite.
	if err := s.Set(ctx, "layout-profile", "glass"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if v, _, _ := s.Get(ctx, "layout-profile"); v != "glass" {
		t.Fatalf("Get after overwrite = %q", v)
	}

	if err := s.Delete(ctx, "layout-profile"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "layout-profile"); ok {
		t.Fatal("key still present after Delete")
	}
	if err := s.Delete(ctx, "layout-profile"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}

	if err := s.Set(ctx, "", "x"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Set empty key: got %v, want ErrInvalidKey", err)
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	testStorage(t, m)

	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if _, _, err := m.Get(context.Background(), "k"); !errors.Is(err, ErrClosed) {
		t.Errorf("Get after Close: got %v, want ErrClosed", err)
	}
	if err := m.Set(context.Background(), "k", "v"); !errors.Is(err, ErrClosed) {
		t.Errorf("Set after Close: got %v, want ErrClosed", err)
	}
}

func TestMemoryConcurrent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Set(ctx, "k", "v")
			_, _, _ = m.Get(ctx, "k")
		}()
	}
	wg.Wait()
	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	testStorage(t, f)

	if f.Path() != dir {
		t.Errorf("Path = %q, want %q", f.Path(), dir)
	}
}

func TestFilePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	a, err := NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Set(ctx, "theme-palette", "premium-spa"); err != nil {
		t.Fatal(err)
	}

	b, err := NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	v, ok, err := b.Get(ctx, "theme-palette")
	if err != nil || !ok || v != "premium-spa" {
		t.Errorf("Get from second instance = %q, %v, %v", v, ok, err)
	}

	// No temp files left behind.
	matches, _ := filepath.Glob(filepath.Join(dir, ".tmp-*"))
	if len(matches) != 0 {
		t.Errorf("leftover temp files: %v", matches)
	}
}

func TestFileCorruptEntry(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(f.path("layout-profile"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := f.Get(context.Background(), "layout-profile"); err == nil {
		t.Error("expected error for corrupt entry")
	}
}

func TestScoped(t *testing.T) {
	inner := NewMemory()
	a := Scoped(inner, VisitorPrefix("a"))
	b := Scoped(inner, VisitorPrefix("b"))
	testStorage(t, a)

	ctx := context.Background()
	_ = a.Set(ctx, "layout-profile", "bento")
	_ = b.Set(ctx, "layout-profile", "glass")

	if v, _, _ := a.Get(ctx, "layout-profile"); v != "bento" {
		t.Errorf("visitor a = %q", v)
	}
	if v, _, _ := b.Get(ctx, "layout-profile"); v != "glass" {
		t.Errorf("visitor b = %q", v)
	}
	if v, ok, _ := inner.Get(ctx, "visitor:a:layout-profile"); !ok || v != "bento" {
		t.Errorf("inner key = %q, %v", v, ok)
	}

	// Closing a view leaves the backend usable.
	if err := a.Close(); err != nil {
		t.Fatal(err)
	}
	if _, _, err := b.Get(ctx, "layout-profile"); err != nil {
		t.Errorf("backend closed by view: %v", err)
	}
}
