package filter

import (
	"slices"
	"strings"

	pstrings "eudiwallet/pkg/platform/strings"
)

// Searchable attributes expose the tags a free-text query is matched against.
type Searchable interface {
	SearchTags() []string
}

// Apply filters c by every filter group of cfg and sorts the survivors by the
// selected keys of its sort groups.
func Apply[A, P any](c Collection[A, P], cfg Configuration[A]) Collection[A, P] {
	var (
		predicates [][]Action[A]
		keys       []func(A) Key
	)
	for _, g := range cfg.groups {
		selected := g.Selected()
		if len(selected) == 0 {
			continue
		}
		switch g.Kind {
		case GroupFilter:
			actions := make([]Action[A], len(selected))
			for i, it := range selected {
				actions[i] = it.Action
			}
			predicates = append(predicates, actions)
		case GroupSort:
			keys = append(keys, selected[0].Action.KeyOf)
		}
	}

	filtered := c.Where(func(it Filterable[A, P]) bool {
		for _, group := range predicates {
			if !slices.ContainsFunc(group, func(a Action[A]) bool { return a.Matches(it.Attributes) }) {
				return false
			}
		}
		return true
	})
	return Sort(filtered, cfg.direction, keys...)
}

// Sort orders c by keys, later keys breaking ties of earlier ones. The sort
// is stable and null keys go last in either direction.
func Sort[A, P any](c Collection[A, P], dir Direction, keys ...func(A) Key) Collection[A, P] {
	if len(keys) == 0 || len(c.items) < 2 {
		return Collection[A, P]{items: slices.Clone(c.items)}
	}

	type keyed struct {
		item Filterable[A, P]
		keys []Key
	}
	rows := make([]keyed, len(c.items))
	for i, it := range c.items {
		ks := make([]Key, len(keys))
		for j, fn := range keys {
			ks[j] = fn(it.Attributes)
		}
		rows[i] = keyed{item: it, keys: ks}
	}

	slices.SortStableFunc(rows, func(a, b keyed) int {
		for i := range a.keys {
			if r := compareKeys(a.keys[i], b.keys[i], dir); r != 0 {
				return r
			}
		}
		return 0
	})

	out := make([]Filterable[A, P], len(rows))
	for i, r := range rows {
		out[i] = r.item
	}
	return Collection[A, P]{items: out}
}

func compareKeys(a, b Key, dir Direction) int {
	switch {
	case a.IsNull() && b.IsNull():
		return 0
	case a.IsNull():
		return 1
	case b.IsNull():
		return -1
	}
	r := a.Compare(b)
	if dir == Descending {
		r = -r
	}
	return r
}

// Search keeps the entries with a search tag containing query, ignoring case.
// A blank query keeps everything.
func Search[A Searchable, P any](c Collection[A, P], query string) Collection[A, P] {
	q := strings.TrimSpace(query)
	if q == "" {
		return Collection[A, P]{items: slices.Clone(c.items)}
	}
	return c.Where(func(it Filterable[A, P]) bool {
		return slices.ContainsFunc(it.Attributes.SearchTags(), func(tag string) bool {
			return pstrings.ContainsFold(tag, q)
		})
	})
}
