// Package filter implements the generic catalog filtering facility: an
// immutable collection of attribute-tagged items, selection-based filter and
// sort groups, and the engine that derives a filtered, sorted view.
package filter

import "slices"

// Filterable is one entry of a Collection. Attributes feed predicates and sort
// keys; Payload is carried through untouched.
type Filterable[A, P any] struct {
	ID         string
	Attributes A
	Payload    P
}

// Collection is an immutable, ordered list of entries with unique ids.
type Collection[A, P any] struct {
	items []Filterable[A, P]
}

// NewCollection copies items, dropping later entries whose id was already seen.
func NewCollection[A, P any](items ...Filterable[A, P]) Collection[A, P] {
	seen := make(map[string]struct{}, len(items))
	out := make([]Filterable[A, P], 0, len(items))
	for _, it := range items {
		if _, dup := seen[it.ID]; dup {
			continue
		}
		seen[it.ID] = struct{}{}
		out = append(out, it)
	}
	return Collection[A, P]{items: out}
}

func (c Collection[A, P]) Items() []Filterable[A, P] {
	return slices.Clone(c.items)
}

func (c Collection[A, P]) Len() int {
	return len(c.items)
}

func (c Collection[A, P]) IDs() []string {
	ids := make([]string, len(c.items))
	for i, it := range c.items {
		ids[i] = it.ID
	}
	return ids
}

func (c Collection[A, P]) Get(id string) (Filterable[A, P], bool) {
	idx := slices.IndexFunc(c.items, func(it Filterable[A, P]) bool { return it.ID == id })
	if idx < 0 {
		return Filterable[A, P]{}, false
	}
	return c.items[idx], true
}

// Map returns a new collection with fn applied to every entry. fn must keep ids.
func (c Collection[A, P]) Map(fn func(Filterable[A, P]) Filterable[A, P]) Collection[A, P] {
	out := make([]Filterable[A, P], len(c.items))
	for i, it := range c.items {
		out[i] = fn(it)
	}
	return Collection[A, P]{items: out}
}

// Where keeps the entries accepted by keep, preserving order.
func (c Collection[A, P]) Where(keep func(Filterable[A, P]) bool) Collection[A, P] {
	out := make([]Filterable[A, P], 0, len(c.items))
	for _, it := range c.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return Collection[A, P]{items: out}
}
