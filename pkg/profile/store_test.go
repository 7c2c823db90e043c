package profile

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	serrors "github.com/petspa/salonsite/pkg/errors"
	"github.com/petspa/salonsite/pkg/layout"
	"github.com/petspa/salonsite/pkg/storage"
)

// countingStorage records writes on top of an in-memory store.
type countingStorage struct {
	*storage.Memory
	mu   sync.Mutex
	sets int
}

func newCounting() *countingStorage { return &countingStorage{Memory: storage.NewMemory()} }

func (c *countingStorage) Set(ctx context.Context, key, value string) error {
	c.mu.Lock()
	c.sets++
	c.mu.Unlock()
	return c.Memory.Set(ctx, key, value)
}

// failingStorage fails every operation.
type failingStorage struct{}

var errBackend = errors.New("backend unavailable")

func (failingStorage) Get(context.Context, string) (string, bool, error) { return "", false, errBackend }
func (failingStorage) Set(context.Context, string, string) error        { return errBackend }
func (failingStorage) Delete(context.Context, string) error             { return errBackend }
func (failingStorage) Close() error                                     { return nil }

// sideChannel reads back what a store wrote.
func sideChannel(a *Attributes) map[string]string {
	out := map[string]string{}
	for _, name := range []string{PropAnimationDuration, PropAnimationEasing, PropStaggerDelay} {
		if v, ok := a.Property(name); ok {
			out[name] = v
		}
	}
	for _, name := range []string{AttrLayout, AttrNavPosition, AttrContentFlow, AttrLayoutWrapper} {
		if v, ok := a.Attribute(name); ok {
			out[name] = v
		}
	}
	return out
}

func expectedSideChannel(p layout.Profile) map[string]string {
	cfg := layout.MustLookup(p)
	return map[string]string{
		PropAnimationDuration: cfg.AnimationDuration,
		PropAnimationEasing:   cfg.AnimationEasing,
		PropStaggerDelay:      cfg.StaggerDelay,
		AttrLayout:            string(p),
		AttrNavPosition:       string(cfg.NavPosition),
		AttrContentFlow:       string(cfg.ContentFlow),
		AttrLayoutWrapper:     string(cfg.Wrapper),
	}
}

func TestNewStartsOnDefault(t *testing.T) {
	s := New(storage.NewMemory(), nil)
	snap := s.Current()
	if snap.Profile != layout.DefaultProfile {
		t.Errorf("profile = %s, want %s", snap.Profile, layout.DefaultProfile)
	}
	if diff := cmp.Diff(layout.MustLookup(layout.DefaultProfile), snap.Config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripPersistence(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()

	for _, p := range layout.Profiles() {
		t.Run(string(p), func(t *testing.T) {
			s := New(st, nil)
			s.Rehydrate(ctx)
			if _, err := s.SetProfile(ctx, string(p)); err != nil {
				t.Fatalf("SetProfile: %v", err)
			}

			fresh := New(st, NewAttributes())
			fresh.Rehydrate(ctx)
			if got := fresh.Current().Profile; got != p {
				t.Errorf("rehydrated %s, want %s", got, p)
			}
		})
	}
}

func TestInvalidStorageDegradation(t *testing.T) {
	ctx := context.Background()
	st := newCounting()
	if err := st.Memory.Set(ctx, StorageKey, "not-a-real-profile"); err != nil {
		t.Fatal(err)
	}

	attrs := NewAttributes()
	s := New(st, attrs)
	s.Rehydrate(ctx)

	snap := s.Current()
	if snap.Profile != layout.DefaultProfile {
		t.Errorf("profile = %s, want default", snap.Profile)
	}
	if diff := cmp.Diff(layout.MustLookup(layout.DefaultProfile), snap.Config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if v, _, _ := st.Get(ctx, StorageKey); v != "not-a-real-profile" {
		t.Errorf("storage rewritten to %q", v)
	}
	if st.sets != 0 {
		t.Errorf("rehydrate wrote storage %d times", st.sets)
	}
	if diff := cmp.Diff(expectedSideChannel(layout.DefaultProfile), sideChannel(attrs)); diff != "" {
		t.Errorf("side channel (-want +got):\n%s", diff)
	}
}

func TestRehydrateStorageError(t *testing.T) {
	attrs := NewAttributes()
	s := New(failingStorage{}, attrs)
	s.Rehydrate(context.Background())

	if s.Profile() != layout.DefaultProfile {
		t.Errorf("profile = %s", s.Profile())
	}
	if diff := cmp.Diff(expectedSideChannel(layout.DefaultProfile), sideChannel(attrs)); diff != "" {
		t.Errorf("side channel (-want +got):\n%s", diff)
	}
}

func TestRehydrateOnce(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	_ = st.Set(ctx, StorageKey, "bento")

	s := New(st, nil)
	s.Rehydrate(ctx)
	if s.Profile() != layout.Bento {
		t.Fatalf("profile = %s, want bento", s.Profile())
	}

	// A later change in storage is not picked up: rehydration is one-shot.
	_ = st.Set(ctx, StorageKey, "glass")
	s.Rehydrate(ctx)
	if s.Profile() != layout.Bento {
		t.Errorf("second Rehydrate changed profile to %s", s.Profile())
	}
}

func TestRehydrateAfterSetIsNoop(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	_ = st.Set(ctx, StorageKey, "bento")

	s := New(st, nil)
	if _, err := s.SetProfile(ctx, "glass"); err != nil {
		t.Fatal(err)
	}
	s.Rehydrate(ctx)
	if s.Profile() != layout.Glass {
		t.Errorf("Rehydrate clobbered explicit choice: %s", s.Profile())
	}
}

func TestSetProfileInvalidIsNoop(t *testing.T) {
	ctx := context.Background()
	st := newCounting()
	attrs := NewAttributes()
	s := New(st, attrs)
	if _, err := s.SetProfile(ctx, "magazine"); err != nil {
		t.Fatal(err)
	}
	before := sideChannel(attrs)
	sets := st.sets

	snap, err := s.SetProfile(ctx, "not-a-real-profile")
	if !serrors.Is(err, serrors.ErrCodeInvalidProfile) {
		t.Fatalf("err = %v, want INVALID_PROFILE", err)
	}
	if snap.Profile != layout.Magazine || s.Profile() != layout.Magazine {
		t.Errorf("state changed to %s", s.Profile())
	}
	if st.sets != sets {
		t.Error("invalid SetProfile wrote storage")
	}
	if diff := cmp.Diff(before, sideChannel(attrs)); diff != "" {
		t.Errorf("side channel changed (-before +after):\n%s", diff)
	}
}

func TestSetProfileIdempotent(t *testing.T) {
	ctx := context.Background()

	once := NewAttributes()
	a := New(storage.NewMemory(), once)
	_, _ = a.SetProfile(ctx, "brutalist")

	twice := NewAttributes()
	b := New(storage.NewMemory(), twice)
	_, _ = b.SetProfile(ctx, "brutalist")
	_, _ = b.SetProfile(ctx, "brutalist")

	if diff := cmp.Diff(a.Current(), b.Current()); diff != "" {
		t.Errorf("state differs (-once +twice):\n%s", diff)
	}
	if diff := cmp.Diff(sideChannel(once), sideChannel(twice)); diff != "" {
		t.Errorf("side channel differs (-once +twice):\n%s", diff)
	}
	if once.HTMLAttrs() != twice.HTMLAttrs() {
		t.Error("rendered attributes differ")
	}
}

func TestSideChannelConsistency(t *testing.T) {
	ctx := context.Background()
	attrs := NewAttributes()
	s := New(storage.NewMemory(), attrs)
	s.Rehydrate(ctx)

	// Walk every transition so stale values from the previous profile
	// would show up.
	for _, p := range layout.Profiles() {
		if _, err := s.SetProfile(ctx, string(p)); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(expectedSideChannel(p), sideChannel(attrs)); diff != "" {
			t.Errorf("after %s (-want +got):\n%s", p, diff)
		}
	}
}

func TestSetProfilePersistenceFailure(t *testing.T) {
	attrs := NewAttributes()
	s := New(failingStorage{}, attrs)
	snap, err := s.SetProfile(context.Background(), "sidebar")
	if err != nil {
		t.Fatalf("persistence failure surfaced: %v", err)
	}
	if snap.Profile != layout.Sidebar || s.Profile() != layout.Sidebar {
		t.Errorf("profile = %s, want sidebar", s.Profile())
	}
	if v, _ := attrs.Attribute(AttrLayout); v != "sidebar" {
		t.Errorf("data-layout = %q", v)
	}
}

func TestSnapshotConsistentUnderConcurrency(t *testing.T) {
	ctx := context.Background()
	s := New(storage.NewMemory(), NewAttributes())
	profiles := layout.Profiles()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = s.SetProfile(ctx, string(profiles[(i+j)%len(profiles)]))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				snap := s.Current()
				if snap.Config != layout.MustLookup(snap.Profile) {
					t.Errorf("inconsistent snapshot for %s", snap.Profile)
					return
				}
			}
		}()
	}
	wg.Wait()
}
