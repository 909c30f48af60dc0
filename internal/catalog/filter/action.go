package filter

import "fmt"

// ActionKind tags the variant held by an Action.
type ActionKind uint8

const (
	ActionPredicate ActionKind = iota + 1
	ActionSortKey
)

func (k ActionKind) String() string {
	switch k {
	case ActionPredicate:
		return "predicate"
	case ActionSortKey:
		return "sort_key"
	default:
		return fmt.Sprintf("action(%d)", uint8(k))
	}
}

// Action is what a filter item does with an item's attributes: either an
// inclusion test or a sort-key extractor. Build one with Predicate, MatchAll
// or SortKey; the zero Action is invalid.
type Action[A any] struct {
	kind      ActionKind
	predicate func(A) bool
	sortKey   func(A) Key
}

func Predicate[A any](fn func(A) bool) Action[A] {
	return Action[A]{kind: ActionPredicate, predicate: fn}
}

// MatchAll is the sentinel predicate: it accepts every item.
func MatchAll[A any]() Action[A] {
	return Predicate(func(A) bool { return true })
}

func SortKey[A any](fn func(A) Key) Action[A] {
	return Action[A]{kind: ActionSortKey, sortKey: fn}
}

func (a Action[A]) Kind() ActionKind {
	return a.kind
}

// Matches evaluates a predicate action. Sort-key actions never exclude.
func (a Action[A]) Matches(attrs A) bool {
	switch a.kind {
	case ActionPredicate:
		return a.predicate(attrs)
	case ActionSortKey:
		return true
	default:
		panic(fmt.Sprintf("filter: unhandled action kind %s", a.kind))
	}
}

// KeyOf extracts the sort key. Predicate actions yield Null.
func (a Action[A]) KeyOf(attrs A) Key {
	switch a.kind {
	case ActionSortKey:
		return a.sortKey(attrs)
	case ActionPredicate:
		return Null
	default:
		panic(fmt.Sprintf("filter: unhandled action kind %s", a.kind))
	}
}

func (a Action[A]) valid() bool {
	switch a.kind {
	case ActionPredicate:
		return a.predicate != nil
	case ActionSortKey:
		return a.sortKey != nil
	default:
		return false
	}
}
