package adapters

import (
	"container/list"

	"setlist/internal/iterator"
)

var _ iterator.Aggregate[int] = (*Queue[int])(nil)

// Queue exposes an externally owned FIFO queue as an Aggregate. The
// queue is a container/list used with PushBack and Remove(Front()).
// Creating an iterator walks the list from front to back without
// removing anything.
type Queue[T any] struct {
	queue *list.List
}

// NewQueue wraps q. A nil q behaves like an empty queue.
func NewQueue[T any](q *list.List) *Queue[T] {
	return &Queue[T]{queue: q}
}

// CreateIterator returns a sequential iterator over the queued values
// in FIFO order. Values that are not of type T are skipped.
func (q *Queue[T]) CreateIterator() iterator.Iterator[T] {
	if q.queue == nil {
		return iterator.Empty[T]()
	}

	items := make([]T, 0, q.queue.Len())
	for e := q.queue.Front(); e != nil; e = e.Next() {
		if v, ok := e.Value.(T); ok {
			items = append(items, v)
		}
	}
	return iterator.NewSequential(items)
}
