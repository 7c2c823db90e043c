// Package palette holds the salon's brand colour palettes and the
// per-visitor cell that remembers which one is active.
//
// A palette is a fixed list of CSS custom properties. Applying a palette
// writes every property, so switching never leaves colours from the previous
// palette behind.
package palette

import (
	"strings"

	"github.com/petspa/salonsite/pkg/errors"
)

// ID identifies a palette.
type ID string

const (
	FreshClean   ID = "fresh-clean"
	WarmFriendly ID = "warm-friendly"
	PremiumSpa   ID = "premium-spa"
)

// DefaultID is the palette used when no preference exists.
const DefaultID = FreshClean

// StorageKey is the persisted preference key.
const StorageKey = "theme-palette"

var order = []ID{FreshClean, WarmFriendly, PremiumSpa}

// Var is one CSS custom property.
type Var struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Palette is a named set of colour variables.
type Palette struct {
	ID     ID     `json:"id"`
	Name   string `json:"name"`
	Colors []Var  `json:"colors"`
}

// Valid reports whether id names a palette.
func (id ID) Valid() bool {
	_, ok := catalogue[id]
	return ok
}

// Parse normalizes user input into a palette ID.
func Parse(s string) (ID, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if err := errors.ValidateIdentifier(errors.ErrCodeInvalidPalette, "palette", norm); err != nil {
		return "", err
	}
	id := ID(norm)
	if !id.Valid() {
		return "", errors.New(errors.ErrCodeInvalidPalette, "unknown palette %q", s)
	}
	return id, nil
}

// Lookup returns the palette for id.
func Lookup(id ID) (Palette, error) {
	p, ok := catalogue[id]
	if !ok {
		return Palette{}, errors.New(errors.ErrCodeNotFound, "palette %q not found", string(id))
	}
	return clonePalette(p), nil
}

// Resolve returns the palette for key, or the default palette for anything
// unknown.
func Resolve(key string) Palette {
	if id, err := Parse(key); err == nil {
		return clonePalette(catalogue[id])
	}
	return clonePalette(catalogue[DefaultID])
}

// All returns every palette in display order.
func All() []Palette {
	out := make([]Palette, 0, len(order))
	for _, id := range order {
		out = append(out, clonePalette(catalogue[id]))
	}
	return out
}

// IDs returns every palette id in display order.
func IDs() []ID {
	return append([]ID(nil), order...)
}

func clonePalette(p Palette) Palette {
	p.Colors = append([]Var(nil), p.Colors...)
	return p
}
