// Package layout is the profile registry for the salon site.
//
// # Overview
//
// A layout profile is one of a closed set of named presentations ("classic",
// "bento", "brutalist", ...). Each profile maps to exactly one
// [Configuration]: which section variants to render, how entry animations
// are timed, which style tags the templates should apply, which decorative
// features are on, and how the page is structured (navigation position,
// wrapper, content flow).
//
// The registry is a static table built at compile time. It is total over
// the [Profile] constants: [Lookup] never returns a partial record, and a
// profile outside the set fails with CONFIGURATION_NOT_FOUND. [Validate]
// re-checks the whole table with struct tags so a new profile added without
// a complete record is caught by the package tests.
//
// # Usage
//
//	cfg, err := layout.Lookup(layout.Bento)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Hero, cfg.AnimationDuration) // HeroBento 450ms
//
//	for _, p := range layout.Profiles() {
//	    fmt.Println(p, layout.MustLookup(p).Name)
//	}
package layout
