package filter

import (
	"slices"

	dErrors "eudiwallet/pkg/domain-errors"
)

type Direction uint8

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// ParseDirection accepts "asc"/"ascending" and "desc"/"descending".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, dErrors.New(dErrors.CodeBadRequest, "unknown sort direction "+s)
	}
}

// Configuration is an immutable set of groups plus a sort direction. Every
// change returns a new value; values already handed out never change.
type Configuration[A any] struct {
	groups    []Group[A]
	direction Direction
}

func NewConfiguration[A any](direction Direction, groups ...Group[A]) (Configuration[A], error) {
	seen := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		if g.ID == "" {
			return Configuration[A]{}, dErrors.New(dErrors.CodeInvariantViolation, "group id is required")
		}
		if _, dup := seen[g.ID]; dup {
			return Configuration[A]{}, dErrors.New(dErrors.CodeInvariantViolation, "duplicate group "+g.ID)
		}
		seen[g.ID] = struct{}{}
		if err := g.validate(); err != nil {
			return Configuration[A]{}, err
		}
	}
	return Configuration[A]{groups: cloneGroups(groups), direction: direction}, nil
}

func (c Configuration[A]) Direction() Direction {
	return c.direction
}

func (c Configuration[A]) Groups() []Group[A] {
	return cloneGroups(c.groups)
}

func (c Configuration[A]) Group(id string) (Group[A], bool) {
	idx := c.indexOf(id)
	if idx < 0 {
		return Group[A]{}, false
	}
	g := c.groups[idx]
	g.items = slices.Clone(g.items)
	return g, true
}

// WithSelectionToggled toggles one item and returns the resulting configuration.
func (c Configuration[A]) WithSelectionToggled(groupID, itemID string) (Configuration[A], error) {
	idx := c.indexOf(groupID)
	if idx < 0 {
		return c, dErrors.New(dErrors.CodeNotFound, "filter group "+groupID+" not found")
	}
	g, err := c.groups[idx].toggled(itemID)
	if err != nil {
		return c, err
	}
	return c.withGroup(idx, g), nil
}

func (c Configuration[A]) WithDirection(d Direction) Configuration[A] {
	next := Configuration[A]{groups: cloneGroups(c.groups), direction: d}
	return next
}

// WithGroupItems replaces a group's items, keeping the selection of items
// whose ids are still present.
func (c Configuration[A]) WithGroupItems(groupID string, items []Item[A]) (Configuration[A], error) {
	idx := c.indexOf(groupID)
	if idx < 0 {
		return c, dErrors.New(dErrors.CodeNotFound, "filter group "+groupID+" not found")
	}
	g := c.groups[idx].withItems(items)
	if err := g.validate(); err != nil {
		return c, err
	}
	return c.withGroup(idx, g), nil
}

// SelectionEqual reports whether both configurations select the same items
// in the same groups with the same direction.
func (c Configuration[A]) SelectionEqual(other Configuration[A]) bool {
	if c.direction != other.direction || len(c.groups) != len(other.groups) {
		return false
	}
	for i := range c.groups {
		a, b := c.groups[i], other.groups[i]
		if a.ID != b.ID || a.Kind != b.Kind {
			return false
		}
		if !slices.Equal(a.SelectedIDs(), b.SelectedIDs()) {
			return false
		}
	}
	return true
}

func (c Configuration[A]) indexOf(groupID string) int {
	return slices.IndexFunc(c.groups, func(g Group[A]) bool { return g.ID == groupID })
}

func (c Configuration[A]) withGroup(idx int, g Group[A]) Configuration[A] {
	groups := slices.Clone(c.groups)
	groups[idx] = g
	return Configuration[A]{groups: groups, direction: c.direction}
}

func cloneGroups[A any](groups []Group[A]) []Group[A] {
	out := make([]Group[A], len(groups))
	for i, g := range groups {
		g.items = slices.Clone(g.items)
		out[i] = g
	}
	return out
}
