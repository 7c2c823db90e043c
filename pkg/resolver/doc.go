// Package resolver maps the variant names declared by layout profiles to
// renderable units.
//
// Each section kind is a [Family]: a fixed table from variant tag to
// [components.Unit] plus one designated default. Resolving a tag that is
// not in the table never fails; it returns the default unit and reports
// the fallback through [observability.ResolverHooks]. This keeps the page
// rendering when the profile registry and the component tables drift.
//
// Units are handles, so building a [Resolver] parses nothing. Templates are
// parsed on first render and cached on the unit; a process normally shares
// one resolver via [Default].
//
// [CheckConsistency] reports every declared variant that has no unit, so
// tooling and strict servers can fail loudly on drift instead of falling
// back.
package resolver
