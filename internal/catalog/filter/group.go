package filter

import (
	"slices"

	dErrors "eudiwallet/pkg/domain-errors"
)

// Item is one selectable option inside a group.
type Item[A any] struct {
	ID       string
	Name     string
	Selected bool
	// Sentinel marks the "match all" option of a filter group.
	Sentinel bool
	Action   Action[A]
}

// NewSentinel builds a selected match-all item.
func NewSentinel[A any](id, name string) Item[A] {
	return Item[A]{ID: id, Name: name, Selected: true, Sentinel: true, Action: MatchAll[A]()}
}

type GroupKind uint8

const (
	GroupFilter GroupKind = iota + 1
	GroupSort
)

func (k GroupKind) String() string {
	switch k {
	case GroupFilter:
		return "filter"
	case GroupSort:
		return "sort"
	default:
		return "unknown"
	}
}

// Group is a named set of items. Filter groups OR their selected predicates;
// sort groups contribute exactly one selected key extractor.
type Group[A any] struct {
	ID    string
	Name  string
	Kind  GroupKind
	items []Item[A]
}

func NewFilterGroup[A any](id, name string, items ...Item[A]) Group[A] {
	return Group[A]{ID: id, Name: name, Kind: GroupFilter, items: slices.Clone(items)}
}

func NewSortGroup[A any](id, name string, items ...Item[A]) Group[A] {
	return Group[A]{ID: id, Name: name, Kind: GroupSort, items: slices.Clone(items)}
}

func (g Group[A]) Items() []Item[A] {
	return slices.Clone(g.items)
}

func (g Group[A]) Len() int {
	return len(g.items)
}

func (g Group[A]) Selected() []Item[A] {
	var out []Item[A]
	for _, it := range g.items {
		if it.Selected {
			out = append(out, it)
		}
	}
	return out
}

// SelectedIDs returns the ids of selected items in group order.
func (g Group[A]) SelectedIDs() []string {
	var out []string
	for _, it := range g.items {
		if it.Selected {
			out = append(out, it.ID)
		}
	}
	return out
}

func (g Group[A]) indexOf(itemID string) int {
	return slices.IndexFunc(g.items, func(it Item[A]) bool { return it.ID == itemID })
}

func (g Group[A]) sentinelIndex() int {
	return slices.IndexFunc(g.items, func(it Item[A]) bool { return it.Sentinel })
}

func (g Group[A]) validate() error {
	seen := make(map[string]struct{}, len(g.items))
	sentinels := 0
	selected := 0
	for _, it := range g.items {
		if it.ID == "" {
			return dErrors.New(dErrors.CodeInvariantViolation, "filter item id is required in group "+g.ID)
		}
		if _, dup := seen[it.ID]; dup {
			return dErrors.New(dErrors.CodeInvariantViolation, "duplicate filter item "+it.ID+" in group "+g.ID)
		}
		seen[it.ID] = struct{}{}
		if !it.Action.valid() {
			return dErrors.New(dErrors.CodeInvariantViolation, "filter item "+it.ID+" has no action")
		}
		if it.Selected {
			selected++
		}
		switch g.Kind {
		case GroupFilter:
			if it.Action.Kind() != ActionPredicate {
				return dErrors.New(dErrors.CodeInvariantViolation, "filter group "+g.ID+" holds a sort item")
			}
			if it.Sentinel {
				sentinels++
			}
		case GroupSort:
			if it.Action.Kind() != ActionSortKey {
				return dErrors.New(dErrors.CodeInvariantViolation, "sort group "+g.ID+" holds a predicate item")
			}
			if it.Sentinel {
				return dErrors.New(dErrors.CodeInvariantViolation, "sort group "+g.ID+" cannot hold a sentinel")
			}
		default:
			return dErrors.New(dErrors.CodeInvariantViolation, "group "+g.ID+" has unknown kind")
		}
	}
	switch g.Kind {
	case GroupFilter:
		if sentinels > 1 {
			return dErrors.New(dErrors.CodeInvariantViolation, "filter group "+g.ID+" has more than one sentinel")
		}
		if s := g.sentinelIndex(); s >= 0 && g.items[s].Selected && selected > 1 {
			return dErrors.New(dErrors.CodeInvariantViolation, "filter group "+g.ID+" selects the sentinel with other items")
		}
	case GroupSort:
		if len(g.items) > 0 && selected != 1 {
			return dErrors.New(dErrors.CodeInvariantViolation, "sort group "+g.ID+" must select exactly one item")
		}
	}
	return nil
}

// toggled returns a copy of the group with itemID toggled under the group's
// selection rules.
func (g Group[A]) toggled(itemID string) (Group[A], error) {
	idx := g.indexOf(itemID)
	if idx < 0 {
		return g, dErrors.New(dErrors.CodeNotFound, "filter item "+itemID+" not found in group "+g.ID)
	}
	items := slices.Clone(g.items)

	if g.Kind == GroupSort {
		for i := range items {
			items[i].Selected = i == idx
		}
		g.items = items
		return g, nil
	}

	sentinel := g.sentinelIndex()
	target := items[idx]
	switch {
	case sentinel < 0:
		items[idx].Selected = !target.Selected
	case target.Sentinel:
		if target.Selected {
			return g, nil
		}
		for i := range items {
			items[i].Selected = i == idx
		}
	case target.Selected:
		items[idx].Selected = false
		if !anySpecificSelected(items) {
			items[sentinel].Selected = true
		}
	default:
		items[idx].Selected = true
		items[sentinel].Selected = false
	}
	g.items = items
	return g, nil
}

// withItems swaps in a regenerated item list, keeping the selection flags of
// items whose ids survive.
func (g Group[A]) withItems(items []Item[A]) Group[A] {
	prev := make(map[string]bool, len(g.items))
	for _, it := range g.items {
		prev[it.ID] = it.Selected
	}
	next := slices.Clone(items)
	for i := range next {
		if sel, ok := prev[next[i].ID]; ok {
			next[i].Selected = sel
		}
	}
	g.items = next
	g.normalize()
	return g
}

func (g *Group[A]) normalize() {
	switch g.Kind {
	case GroupFilter:
		s := g.sentinelIndex()
		if s < 0 {
			return
		}
		g.items[s].Selected = !anySpecificSelected(g.items)
	case GroupSort:
		if len(g.items) == 0 {
			return
		}
		first := -1
		for i := range g.items {
			if g.items[i].Selected && first < 0 {
				first = i
				continue
			}
			g.items[i].Selected = false
		}
		if first < 0 {
			g.items[0].Selected = true
		}
	}
}

func anySpecificSelected[A any](items []Item[A]) bool {
	return slices.ContainsFunc(items, func(it Item[A]) bool { return it.Selected && !it.Sentinel })
}
