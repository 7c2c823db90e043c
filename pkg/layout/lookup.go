package layout

import (
	"github.com/petspa/salonsite/pkg/errors"
)

// Entry pairs a profile with its configuration.
type Entry struct {
	Profile Profile
	Config  Configuration
}

// Lookup returns the configuration for p. The result is a copy; callers may
// modify it freely. A profile outside the registry fails with
// CONFIGURATION_NOT_FOUND and never yields a partial record.
func Lookup(p Profile) (Configuration, error) {
	cfg, ok := registry[p]
	if !ok {
		return Configuration{}, errors.New(errors.ErrCodeConfigurationNotFound, "no configuration for layout profile %q", string(p))
	}
	return cfg, nil
}

// MustLookup is like Lookup but panics if p has no configuration.
// Use it only where p is a compile-time constant.
func MustLookup(p Profile) Configuration {
	cfg, err := Lookup(p)
	if err != nil {
		panic(err)
	}
	return cfg
}

// All returns every profile with its configuration, in declaration order.
func All() []Entry {
	out := make([]Entry, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, Entry{Profile: p, Config: registry[p]})
	}
	return out
}

// UsesSidebarNav reports whether p places the navigation in a left sidebar.
func UsesSidebarNav(p Profile) bool {
	return registry[p].NavPosition == NavPositionLeft
}

// UsesBottomNav reports whether p uses a fixed bottom navigation bar.
func UsesBottomNav(p Profile) bool {
	return registry[p].NavPosition == NavPositionBottom
}

// UsesFullscreenSections reports whether every section of p fills the viewport.
func UsesFullscreenSections(p Profile) bool {
	return registry[p].SectionHeight == HeightViewport
}

// UsesHorizontalScroll reports whether p lays sections out horizontally.
func UsesHorizontalScroll(p Profile) bool {
	return registry[p].ContentFlow == FlowHorizontal
}
