// Package components holds the renderable units of the salon page: one
// html/template file per section variant, embedded in the binary.
//
// A [Unit] is a handle. Creating one costs nothing; its template is parsed
// on the first [Unit.Render] and the result (or the parse error) is cached
// for the life of the process. Concurrent first renders parse once.
//
// Every unit executes against the same [Props]: the shared content payload,
// the active layout configuration and a few per-request flags. Units read
// the style tags (card style, button style, interactions, spacing) from the
// configuration through the helpers in the template FuncMap, so a profile
// switch restyles every section without touching the templates.
package components
