package profile

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/petspa/salonsite/pkg/errors"
	"github.com/petspa/salonsite/pkg/layout"
	"github.com/petspa/salonsite/pkg/observability"
	"github.com/petspa/salonsite/pkg/storage"
)

// StorageKey is the persisted preference key for the active profile.
const StorageKey = "layout-profile"

// Snapshot is the active profile together with its configuration. Both are
// read under one lock, so they always agree.
type Snapshot struct {
	Profile layout.Profile       `json:"profile"`
	Config  layout.Configuration `json:"config"`
}

// Store is the active-profile cell.
type Store struct {
	mu         sync.Mutex
	storage    storage.Storage
	out        Presentation
	logger     *log.Logger
	current    layout.Profile
	rehydrated bool
	explicit   bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for persistence diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates a store in the Active(DefaultProfile) state. Nothing is read
// or written until Rehydrate or SetProfile; out may be nil when no side
// channel is needed.
func New(st storage.Storage, out Presentation, opts ...Option) *Store {
	s := &Store{
		storage: st,
		out:     out,
		logger:  log.Default(),
		current: layout.DefaultProfile,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rehydrate restores the persisted profile.
//
// It runs at most once per Store and does nothing after SetProfile, so a
// late read can never clobber an explicit choice. It never fails: a storage
// error or an unknown stored value is reported to hooks and the default
// stays active. Storage is never written on this path. In every case the
// side channel is written for the resulting profile.
func (s *Store) Rehydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rehydrated || s.explicit {
		return
	}
	s.rehydrated = true

	hooks := observability.Preferences()
	restored := false
	raw, ok, err := s.storage.Get(ctx, StorageKey)
	switch {
	case err != nil:
		hooks.OnStorageError(ctx, "get", StorageKey, err)
		s.logger.Debug("layout profile read failed, using default", "err", err)
	case !ok:
	case layout.Profile(raw).Valid():
		s.current = layout.Profile(raw)
		restored = true
	default:
		hooks.OnInvalidStored(ctx, StorageKey, raw)
		s.logger.Debug("ignoring unknown stored layout profile", "value", raw)
	}

	hooks.OnRehydrate(ctx, StorageKey, string(s.current), restored)
	s.apply()
}

// Current returns the active profile and its configuration.
func (s *Store) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Profile: s.current, Config: layout.MustLookup(s.current)}
}

// Profile returns the active profile.
func (s *Store) Profile() layout.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SetProfile makes raw the active profile.
//
// An unknown profile returns INVALID_PROFILE and leaves the store untouched.
// Otherwise the cell is updated, the side channel rewritten and the value
// persisted. A persistence failure does not change the outcome: it is
// reported to hooks and the profile stays active for this session. Setting
// the active profile again is harmless.
func (s *Store) SetProfile(ctx context.Context, raw string) (Snapshot, error) {
	p, err := layout.ParseProfile(raw)
	if err != nil {
		return s.Current(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.current
	s.current = p
	s.explicit = true
	s.apply()

	if err := s.storage.Set(ctx, StorageKey, string(p)); err != nil {
		observability.Preferences().OnStorageError(ctx, "set", StorageKey, err)
		s.logger.Warn("layout profile not persisted", "profile", p, "err", errors.Wrap(errors.ErrCodeStorage, err, "persist %s", StorageKey))
	}
	if prev != p {
		observability.Preferences().OnChange(ctx, StorageKey, string(prev), string(p))
	}
	return Snapshot{Profile: p, Config: layout.MustLookup(p)}, nil
}

// Apply rewrites the side channel for the active profile onto out. It is
// used to project a rehydrated store onto a second presentation.
func (s *Store) Apply(out Presentation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	Write(out, s.current)
}

func (s *Store) apply() {
	if s.out != nil {
		Write(s.out, s.current)
	}
}

// Write projects p onto out. Every property and attribute is written, so no
// value from a previous profile survives.
func Write(out Presentation, p layout.Profile) {
	cfg := layout.MustLookup(p)
	out.SetProperty(PropAnimationDuration, cfg.AnimationDuration)
	out.SetProperty(PropAnimationEasing, cfg.AnimationEasing)
	out.SetProperty(PropStaggerDelay, cfg.StaggerDelay)

	out.SetAttribute(AttrLayout, string(p))
	out.SetAttribute(AttrNavPosition, string(cfg.NavPosition))
	out.SetAttribute(AttrContentFlow, string(cfg.ContentFlow))
	out.SetAttribute(AttrLayoutWrapper, string(cfg.Wrapper))
}
