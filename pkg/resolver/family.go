package resolver

import (
	"fmt"
	"iter"
	"slices"

	"github.com/petspa/salonsite/pkg/components"
	"github.com/petspa/salonsite/pkg/observability"
)

// Family is the unit table for one section kind.
type Family[V ~string] struct {
	name  string
	def   V
	order []V
	units map[V]*components.Unit
}

// NewFamily builds a family named after its template directory. def must be
// one of variants.
func NewFamily[V ~string](name string, def V, variants ...V) *Family[V] {
	f := &Family[V]{
		name:  name,
		def:   def,
		units: make(map[V]*components.Unit, len(variants)),
	}
	for _, v := range variants {
		if _, dup := f.units[v]; dup {
			continue
		}
		f.order = append(f.order, v)
		f.units[v] = components.NewUnit(name, string(v))
	}
	if _, ok := f.units[def]; !ok {
		panic(fmt.Sprintf("resolver: %s default %q is not a member", name, def))
	}
	return f
}

// Name returns the family name.
func (f *Family[V]) Name() string { return f.name }

// Default returns the variant used for unknown tags.
func (f *Family[V]) Default() V { return f.def }

// Resolve returns the unit for v, or the default unit when v is unknown.
func (f *Family[V]) Resolve(v V) *components.Unit {
	if u, ok := f.units[v]; ok {
		return u
	}
	observability.Resolver().OnVariantFallback(f.name, string(v), string(f.def))
	return f.units[f.def]
}

// Has reports whether name is a variant of the family.
func (f *Family[V]) Has(name string) bool {
	_, ok := f.units[V(name)]
	return ok
}

// Available yields the family's variants in declaration order. The
// sequence can be ranged over any number of times.
func (f *Family[V]) Available() iter.Seq[V] {
	return slices.Values(f.order)
}
