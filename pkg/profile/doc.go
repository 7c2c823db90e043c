// Package profile holds the active layout profile for one visitor session.
//
// # Lifecycle
//
// A [Store] is created in the Active(DefaultProfile) state, so a
// configuration is always available, even before persisted state has been
// read. [Store.Rehydrate] then restores the visitor's saved choice once; an
// absent, unreadable or unknown value keeps the default. [Store.SetProfile]
// is the only writer: it validates, updates the cell, persists the choice
// and rewrites the presentation side channel.
//
// # Presentation side channel
//
// Every transition writes three CSS custom properties
// (--layout-animation-duration, --layout-animation-easing,
// --layout-stagger-delay) and four attributes (data-layout,
// data-nav-position, data-content-flow, data-layout-wrapper) through a
// [Presentation]. [Attributes] is the implementation used when rendering:
// it collects the values and emits them on the document's <html> element.
//
// # Concurrency
//
// A Store is safe for concurrent use, but it models one visitor. The server
// builds a fresh Store per request over that visitor's scoped storage.
package profile
