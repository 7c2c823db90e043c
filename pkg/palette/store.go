package palette

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/petspa/salonsite/pkg/observability"
	"github.com/petspa/salonsite/pkg/storage"
)

// PropertySetter receives CSS custom properties.
type PropertySetter interface {
	SetProperty(name, value string)
}

// Store is the active-palette cell for one visitor session. It starts on
// DefaultID, restores the persisted choice once, and writes through to
// storage on every Set.
type Store struct {
	mu         sync.Mutex
	storage    storage.Storage
	out        PropertySetter
	logger     *log.Logger
	current    ID
	rehydrated bool
	explicit   bool
}

// NewStore creates a palette cell over st. out may be nil.
func NewStore(st storage.Storage, out PropertySetter, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{storage: st, out: out, logger: logger, current: DefaultID}
}

// Rehydrate restores the persisted palette. It runs at most once, is a
// no-op after an explicit Set, and never fails: a storage error or an
// unknown id leaves the default in place.
func (s *Store) Rehydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rehydrated || s.explicit {
		return
	}
	s.rehydrated = true

	restored := false
	raw, ok, err := s.storage.Get(ctx, StorageKey)
	switch {
	case err != nil:
		observability.Preferences().OnStorageError(ctx, "get", StorageKey, err)
		s.logger.Debug("palette read failed", "err", err)
	case ok && ID(raw).Valid():
		s.current = ID(raw)
		restored = true
	case ok:
		observability.Preferences().OnInvalidStored(ctx, StorageKey, raw)
	}
	observability.Preferences().OnRehydrate(ctx, StorageKey, string(s.current), restored)
	s.apply()
}

// Current returns the active palette.
func (s *Store) Current() Palette {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePalette(catalogue[s.current])
}

// Set activates the palette named by raw and persists it. An unknown id
// fails with INVALID_PALETTE and changes nothing. A persistence failure is
// reported to hooks; the in-memory change stands.
func (s *Store) Set(ctx context.Context, raw string) error {
	id, err := Parse(raw)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.current
	s.current = id
	s.explicit = true
	s.apply()

	if err := s.storage.Set(ctx, StorageKey, string(id)); err != nil {
		observability.Preferences().OnStorageError(ctx, "set", StorageKey, err)
		s.logger.Warn("palette not persisted", "palette", id, "err", err)
	}
	if prev != id {
		observability.Preferences().OnChange(ctx, StorageKey, string(prev), string(id))
	}
	return nil
}

func (s *Store) apply() {
	if s.out != nil {
		Write(s.out, catalogue[s.current])
	}
}

// Write sets every colour of p on out.
func Write(out PropertySetter, p Palette) {
	for _, v := range p.Colors {
		out.SetProperty(v.Name, v.Value)
	}
}
