package adapters

import "setlist/internal/iterator"

var _ iterator.Aggregate[int] = (*Array[int])(nil)

// Array exposes a fixed, externally owned slice as an Aggregate.
// The slice is not copied until CreateIterator is called, so each
// iterator reflects the contents at that moment.
type Array[T any] struct {
	items []T
}

// NewArray wraps items without copying them
func NewArray[T any](items []T) *Array[T] {
	return &Array[T]{items: items}
}

// CreateIterator returns a sequential iterator over a copy of the array
func (a *Array[T]) CreateIterator() iterator.Iterator[T] {
	return iterator.NewSequential(a.items)
}
