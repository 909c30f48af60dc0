// Package session keeps the filter configuration a user is editing apart from
// the one currently applied, and derives the visible view from the latter.
package session

import (
	"eudiwallet/internal/catalog/filter"
)

// Manager holds defaults, the applied configuration and an optional working
// copy. It is not safe for concurrent use; its owner serializes access.
type Manager[A, P any] struct {
	defaults filter.Configuration[A]
	applied  filter.Configuration[A]
	working  *filter.Configuration[A]
	source   filter.Collection[A, P]
	view     filter.Collection[A, P]
}

// New starts a session with defaults applied to an empty source.
func New[A, P any](defaults filter.Configuration[A]) *Manager[A, P] {
	return &Manager[A, P]{defaults: defaults, applied: defaults}
}

// SetSource replaces the collection being filtered and returns the new view.
func (m *Manager[A, P]) SetSource(c filter.Collection[A, P]) filter.Collection[A, P] {
	m.source = c
	m.refresh()
	return m.view
}

func (m *Manager[A, P]) View() filter.Collection[A, P] {
	return m.view
}

func (m *Manager[A, P]) Source() filter.Collection[A, P] {
	return m.source
}

func (m *Manager[A, P]) Defaults() filter.Configuration[A] {
	return m.defaults
}

func (m *Manager[A, P]) Applied() filter.Configuration[A] {
	return m.applied
}

// Working returns the configuration being edited, if an edit is pending.
func (m *Manager[A, P]) Working() (filter.Configuration[A], bool) {
	if m.working == nil {
		return filter.Configuration[A]{}, false
	}
	return *m.working, true
}

// BeginEdit starts a fresh edit from the applied configuration.
func (m *Manager[A, P]) BeginEdit() filter.Configuration[A] {
	w := m.applied
	m.working = &w
	return w
}

// ToggleSelection toggles an item in the working copy, starting an edit if
// none is pending. The applied configuration and the view are untouched.
func (m *Manager[A, P]) ToggleSelection(groupID, itemID string) (filter.Configuration[A], error) {
	base := m.editBase()
	next, err := base.WithSelectionToggled(groupID, itemID)
	if err != nil {
		return base, err
	}
	m.working = &next
	return next, nil
}

// SetDirection changes the sort direction of the working copy.
func (m *Manager[A, P]) SetDirection(d filter.Direction) filter.Configuration[A] {
	next := m.editBase().WithDirection(d)
	m.working = &next
	return next
}

// Apply commits the working copy and returns the derived view. Without a
// pending edit it returns the current view unchanged.
func (m *Manager[A, P]) Apply() filter.Collection[A, P] {
	if m.working == nil {
		return m.view
	}
	m.applied = *m.working
	m.working = nil
	m.refresh()
	return m.view
}

// Revert discards the working copy.
func (m *Manager[A, P]) Revert() {
	m.working = nil
}

// ResetToDefaults applies the defaults immediately and drops any edit.
func (m *Manager[A, P]) ResetToDefaults() filter.Collection[A, P] {
	m.applied = m.defaults
	m.working = nil
	m.refresh()
	return m.view
}

// ReplaceGroupItems regenerates a data-derived group in the defaults, the
// applied configuration and any working copy. Selections survive for items
// whose ids are still present.
func (m *Manager[A, P]) ReplaceGroupItems(groupID string, items []filter.Item[A]) error {
	defaults, err := m.defaults.WithGroupItems(groupID, items)
	if err != nil {
		return err
	}
	applied, err := m.applied.WithGroupItems(groupID, items)
	if err != nil {
		return err
	}
	if m.working != nil {
		working, err := m.working.WithGroupItems(groupID, items)
		if err != nil {
			return err
		}
		m.working = &working
	}
	m.defaults = defaults
	m.applied = applied
	m.refresh()
	return nil
}

// FilteringActive reports whether the applied selections differ from the defaults.
func (m *Manager[A, P]) FilteringActive() bool {
	return !m.applied.SelectionEqual(m.defaults)
}

// Editing reports whether a working copy exists.
func (m *Manager[A, P]) Editing() bool {
	return m.working != nil
}

// Dirty reports whether the working copy differs from the applied configuration.
func (m *Manager[A, P]) Dirty() bool {
	return m.working != nil && !m.working.SelectionEqual(m.applied)
}

func (m *Manager[A, P]) editBase() filter.Configuration[A] {
	if m.working != nil {
		return *m.working
	}
	return m.applied
}

func (m *Manager[A, P]) refresh() {
	m.view = filter.Apply(m.source, m.applied)
}
