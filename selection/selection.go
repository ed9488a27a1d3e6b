package selection

import (
	"sync"

	"github.com/google/btree"
)

// Set stores the item indexes that were selected by the user.
// The contents of the Set is always sorted from smallest to
// largest index, and each index is stored at most once.
type Set struct {
	mutex sync.RWMutex
	tree  *btree.BTreeG[int]
}

// New creates a new Set holding the given indexes.
func New(indexes ...int) *Set {
	s := &Set{}
	s.Reset()
	s.Add(indexes...)
	return s
}

// Add adds indexes to the selection. Indexes that already
// exist in the selection are silently ignored.
func (s *Set) Add(indexes ...int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, idx := range indexes {
		s.tree.ReplaceOrInsert(idx)
	}
}

// Reset clears all selected indexes from the selection.
func (s *Set) Reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.tree = btree.NewOrderedG[int](32)
}

// Has reports whether the given index is in the selection.
func (s *Set) Has(idx int) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.Has(idx)
}

// Len returns the number of selected indexes.
func (s *Set) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.Len()
}

// Indexes returns the selected indexes in ascending order. The
// returned slice is never nil and is owned by the caller.
func (s *Set) Indexes() []int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	out := make([]int, 0, s.tree.Len())
	s.tree.Ascend(func(idx int) bool {
		out = append(out, idx)
		return true
	})
	return out
}
