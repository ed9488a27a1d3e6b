// Package selstore implements a reactive selection store: a list of
// items, the set of selected indexes, and the derived list of selected
// items, observable as a single snapshot.
//
// A store is either single-select (the default) or multi-select. In
// single-select mode at most one index is selected after any Select or
// Unselect call. Items are identified by reference: selecting by item
// matches the very same pointer (or map) that was handed to the store.
//
//	s, err := selstore.New(items, selstore.WithMultiple(true))
//	if err != nil {
//		return err
//	}
//	unsubscribe := s.Subscribe(func(st selstore.State[*Item]) {
//		render(st.Selection)
//	})
//	defer unsubscribe()
//	s.SelectIndex(true, 0, 2).UnselectItem(items[0])
package selstore

import (
	"slices"

	pdebug "github.com/lestrrat-go/pdebug"
	"github.com/peco/selstore/observable"
)

// State is a snapshot of a Store. The slices it contains are shared
// with other observers and must not be modified.
type State[T any] struct {
	// Items is the list of items, in their original order.
	Items []T `json:"items" yaml:"items"`

	// Selected lists the selected indexes into Items.
	Selected []int `json:"selected" yaml:"selected"`

	// Selection holds the items at the Selected indexes, in the same
	// order as Selected.
	Selection []T `json:"selection" yaml:"selection"`
}

// Store holds the items and the current selection.
type Store[T any] struct {
	multiple bool
	items    *observable.Value[[]T]
	selected *observable.Value[[]int]
	state    *observable.Derived[State[T]]
}

// New creates a new Store over items. Every item must be a non-nil
// pointer to a struct or map, or a non-nil map; otherwise New returns
// an error wrapping ErrInvalidItems. Initially selected indexes given
// via WithSelected must all exist, otherwise New returns an error
// wrapping ErrInvalidSelected.
func New[T any](items []T, options ...Option) (*Store[T], error) {
	var cfg storeConfig
	for _, option := range options {
		option(&cfg)
	}

	validItems, err := validateItems(items)
	if err != nil {
		return nil, err
	}

	selected, err := validateSelected(cfg.selected, len(validItems))
	if err != nil {
		return nil, err
	}

	s := &Store[T]{
		multiple: cfg.multiple,
		items:    observable.New(validItems),
		selected: observable.New(selected, observable.WithEqual(slices.Equal[[]int])),
	}
	s.state = observable.Derive2(s.items, s.selected, snapshot[T])
	return s, nil
}

func snapshot[T any](items []T, selected []int) State[T] {
	selection := make([]T, 0, len(selected))
	for _, idx := range selected {
		if idx < 0 || idx >= len(items) {
			continue
		}
		selection = append(selection, items[idx])
	}
	return State[T]{
		Items:     items,
		Selected:  selected,
		Selection: selection,
	}
}

// Subscribe registers fn to receive the current state immediately and
// every subsequent state. The returned function cancels the
// subscription; it may be called any number of times.
func (s *Store[T]) Subscribe(fn func(State[T])) (unsubscribe func()) {
	return s.state.Subscribe(fn)
}

// Get returns the current state.
func (s *Store[T]) Get() State[T] {
	return s.state.Get()
}

// Multiple reports whether the store is in multi-select mode.
func (s *Store[T]) Multiple() bool {
	return s.multiple
}

// Len returns the number of items.
func (s *Store[T]) Len() int {
	return len(s.items.Get())
}

// IsSelected reports whether the item at idx is selected.
func (s *Store[T]) IsSelected(idx int) bool {
	return slices.Contains(s.selected.Get(), idx)
}

// Reset clears the selection and replaces the items with a copy of
// items. If items is invalid the store is left untouched and an error
// wrapping ErrInvalidItems is returned.
func (s *Store[T]) Reset(items []T) error {
	if pdebug.Enabled {
		g := pdebug.Marker("Store.Reset (%d items)", len(items))
		defer g.End()
	}

	validItems, err := validateItems(items)
	if err != nil {
		return err
	}

	s.selected.Set([]int{})
	s.items.Set(validItems)
	return nil
}
