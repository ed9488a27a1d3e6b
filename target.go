package selstore

// Target identifies an item, either by its position in the store or by
// the item itself.
type Target[T any] struct {
	index  int
	item   T
	byItem bool
}

// AtIndex returns a Target referring to the item at index i.
func AtIndex[T any](i int) Target[T] {
	return Target[T]{index: i}
}

// ForItem returns a Target referring to item. The item is located by
// identity when the target is used; a different object with the same
// contents does not match.
func ForItem[T any](item T) Target[T] {
	return Target[T]{item: item, byItem: true}
}

// IsItem reports whether t refers to an item rather than an index.
func (t Target[T]) IsItem() bool {
	return t.byItem
}

// Index returns the index t refers to. It is only meaningful when
// IsItem returns false.
func (t Target[T]) Index() int {
	return t.index
}

// Item returns the item t refers to. It is only meaningful when IsItem
// returns true.
func (t Target[T]) Item() T {
	return t.item
}

// At is a shorthand for AtIndex that infers T from the store.
func (s *Store[T]) At(i int) Target[T] {
	return AtIndex[T](i)
}

// Ref is a shorthand for ForItem.
func (s *Store[T]) Ref(item T) Target[T] {
	return ForItem(item)
}

func indexTargets[T any](indexes []int) []Target[T] {
	out := make([]Target[T], len(indexes))
	for i, idx := range indexes {
		out[i] = AtIndex[T](idx)
	}
	return out
}

func itemTargets[T any](items []T) []Target[T] {
	out := make([]Target[T], len(items))
	for i, item := range items {
		out[i] = ForItem(item)
	}
	return out
}
