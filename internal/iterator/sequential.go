package iterator

var _ Iterator[int] = (*Sequential[int])(nil)

// Sequential yields items in the order they were given.
type Sequential[T any] struct {
	cursor[T]
}

// NewSequential returns an iterator over a copy of items
func NewSequential[T any](items []T) *Sequential[T] {
	return &Sequential[T]{
		cursor: cursor[T]{items: snapshot(items)},
	}
}

// Empty returns an iterator that is exhausted from the start
func Empty[T any]() *Sequential[T] {
	return &Sequential[T]{}
}
