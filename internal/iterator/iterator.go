// Package iterator provides cursor-style iterators over private snapshots
// of a collection.
//
// Every iterator copies the items it is given at construction time, so
// later changes to the source collection are never observed. Two
// iterators never share a cursor or a backing array.
//
// The usual usage looks like this:
//
//	it := playlist.CreateIterator()
//	for it.HasNext() {
//		song, err := it.Next()
//		if err != nil {
//			return err
//		}
//		... do stuff with song ...
//	}
package iterator

import "errors"

// ErrExhausted is returned by Next when there are no more items
var ErrExhausted = errors.New("iterator exhausted")

// Iterator is the common contract for all iterators in this package.
// Next must only be called after HasNext returned true; otherwise it
// returns ErrExhausted and leaves the cursor where it is.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
	// Reset rewinds to the first item without taking a new snapshot.
	Reset()
}

// Aggregate is implemented by any container that can hand out an
// iterator over its elements without exposing how it stores them.
type Aggregate[T any] interface {
	CreateIterator() Iterator[T]
}

// cursor holds the snapshot and position shared by every strategy
type cursor[T any] struct {
	items []T
	pos   int
}

func snapshot[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// HasNext reports whether Next will return another item
func (c *cursor[T]) HasNext() bool {
	return c.pos < len(c.items)
}

// Next returns the item under the cursor and advances it
func (c *cursor[T]) Next() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, ErrExhausted
	}
	item := c.items[c.pos]
	c.pos++
	return item, nil
}

// Reset moves the cursor back to the first item
func (c *cursor[T]) Reset() {
	c.pos = 0
}

// Len returns the number of items in the snapshot
func (c *cursor[T]) Len() int {
	return len(c.items)
}

// Remaining returns how many items Next will still yield
func (c *cursor[T]) Remaining() int {
	return len(c.items) - c.pos
}
