package selstore

import (
	pdebug "github.com/lestrrat-go/pdebug"
	"github.com/peco/selstore/selection"
)

// Select selects the given targets. If reset is true the previous
// selection is discarded first; otherwise, in multi-select mode, the
// targets are added to it. In single-select mode only the last target
// counts and it always replaces the previous selection.
//
// Targets that do not resolve to an existing item (an index out of
// range, or an item that is not in the store) are ignored.
func (s *Store[T]) Select(reset bool, targets ...Target[T]) *Store[T] {
	if pdebug.Enabled {
		g := pdebug.Marker("Store.Select (reset=%t, %d targets)", reset, len(targets))
		defer g.End()
	}

	// Clearing up front and then accumulating with reset=false yields
	// the same set as accumulating with reset=true, but the latter
	// publishes a single state instead of two.
	s.selectMany(s.resolve(targets), reset)
	return s
}

// SelectIndex is Select for index targets.
func (s *Store[T]) SelectIndex(reset bool, indexes ...int) *Store[T] {
	return s.Select(reset, indexTargets[T](indexes)...)
}

// SelectItem is Select for item targets.
func (s *Store[T]) SelectItem(reset bool, items ...T) *Store[T] {
	return s.Select(reset, itemTargets(items)...)
}

// Unselect removes the given targets from the selection. Called with no
// targets it unselects everything. Targets that are not selected or do
// not resolve are ignored.
func (s *Store[T]) Unselect(targets ...Target[T]) *Store[T] {
	if pdebug.Enabled {
		g := pdebug.Marker("Store.Unselect (%d targets)", len(targets))
		defer g.End()
	}

	current := s.selected.Get()
	if len(current) == 0 {
		return s
	}

	if len(targets) == 0 {
		s.selected.Set([]int{})
		return s
	}

	remove := selection.New(s.resolve(targets)...)
	remaining := make([]int, 0, len(current))
	for _, idx := range current {
		if !remove.Has(idx) {
			remaining = append(remaining, idx)
		}
	}
	s.selectMany(remaining, true)
	return s
}

// UnselectIndex is Unselect for index targets. Called with no indexes
// it unselects everything.
func (s *Store[T]) UnselectIndex(indexes ...int) *Store[T] {
	return s.Unselect(indexTargets[T](indexes)...)
}

// UnselectItem is Unselect for item targets. Called with no items it
// unselects everything.
func (s *Store[T]) UnselectItem(items ...T) *Store[T] {
	return s.Unselect(itemTargets(items)...)
}

// UnselectAll clears the selection.
func (s *Store[T]) UnselectAll() *Store[T] {
	return s.Unselect()
}

// resolve turns targets into candidate indexes. Index targets are
// passed through untouched (normalize deals with their range); item
// targets are looked up by identity and dropped when absent.
func (s *Store[T]) resolve(targets []Target[T]) []int {
	items := s.items.Get()
	out := make([]int, 0, len(targets))
	for _, t := range targets {
		if !t.IsItem() {
			out = append(out, t.Index())
			continue
		}
		if idx := indexOfItem(items, t.Item()); idx > -1 {
			out = append(out, idx)
		}
	}
	return out
}

func indexOfItem[T any](items []T, item T) int {
	for i, v := range items {
		if sameItem(v, item) {
			return i
		}
	}
	return -1
}

// normalize reports whether idx points to an existing item.
func (s *Store[T]) normalize(idx int) (int, bool) {
	if idx < 0 || idx >= len(s.items.Get()) {
		return -1, false
	}
	return idx, true
}

// selectMany applies candidate indexes to the selection.
//
// An empty list clears the selection when reset is true and is a no-op
// otherwise. In single-select mode only the last candidate is looked at
// and it always replaces the selection, which ends up empty when the
// candidate does not normalize. In multi-select mode the normalized
// candidates replace (reset) or are merged into the selection, without
// duplicates.
func (s *Store[T]) selectMany(indexes []int, reset bool) {
	if len(indexes) == 0 {
		if reset {
			s.selected.Set([]int{})
		}
		return
	}

	if !s.multiple {
		if idx, ok := s.normalize(indexes[len(indexes)-1]); ok {
			s.selected.Set([]int{idx})
		} else {
			s.selected.Set([]int{})
		}
		return
	}

	set := selection.New()
	if !reset {
		set.Add(s.selected.Get()...)
	}
	for _, candidate := range indexes {
		if idx, ok := s.normalize(candidate); ok {
			set.Add(idx)
		}
	}
	if pdebug.Enabled {
		pdebug.Printf("Store.selectMany: %d index(es) selected", set.Len())
	}
	s.selected.Set(set.Indexes())
}
