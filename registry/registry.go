// Package registry holds the catalog of EditorConfig properties recognized
// by the language server: each property's canonical name, its legal value
// set, and the documentation shown alongside completions and hovers.
//
// The catalog is fixed at process start and shared read-only by every
// request; there is no reload or mutation API.
package registry

import "strings"

// Property describes a single EditorConfig property.
//
// Name is the lowercase canonical key, unique across the catalog. Values
// lists the permitted literals in display order; an empty list means the
// property accepts free-form values and no value completions are offered.
type Property struct {
	Name        string
	Values      []string
	Description string
}

// Registry is an immutable lookup table of property definitions.
type Registry struct {
	props  []Property
	byName map[string]Property
}

// New builds a registry from the given definitions. Declaration order is
// preserved and drives the order of name suggestions.
func New(props []Property) *Registry {
	r := &Registry{
		props:  props,
		byName: make(map[string]Property, len(props)),
	}
	for _, p := range props {
		r.byName[p.Name] = p
	}
	return r
}

// Lookup returns the definition for the named property. The name is
// case-normalized before matching; there is no fuzzy matching. A miss is
// reported through the second return value, never as an error.
func (r *Registry) Lookup(name string) (Property, bool) {
	p, ok := r.byName[strings.ToLower(name)]
	return p, ok
}

// All returns every property definition in declaration order. The order is
// stable across calls. The returned slice is a copy so callers cannot
// disturb the catalog.
func (r *Registry) All() []Property {
	out := make([]Property, len(r.props))
	copy(out, r.props)
	return out
}

// Len returns the number of properties in the catalog.
func (r *Registry) Len() int {
	return len(r.props)
}
