package iterator

import (
	"sort"

	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*Filter[int])(nil)

// Filter yields only the items accepted by a predicate. When no item
// matches, the iterator is valid and simply exhausted from the start.
type Filter[T any] struct {
	cursor[T]
}

// NewFilter returns an iterator over the items for which keep returns
// true, in their original order. A nil keep accepts every item.
func NewFilter[T any](items []T, keep func(T) bool) *Filter[T] {
	return &Filter[T]{
		cursor: cursor[T]{items: selectItems(items, keep)},
	}
}

// NewSortedFilter is like NewFilter but orders the retained items by
// key, ascending. The sort is stable: items with equal keys keep their
// relative order.
func NewSortedFilter[T any, K constraints.Ordered](items []T, keep func(T) bool, key func(T) K) *Filter[T] {
	selected := selectItems(items, keep)
	sort.SliceStable(selected, func(i, j int) bool {
		return key(selected[i]) < key(selected[j])
	})

	return &Filter[T]{
		cursor: cursor[T]{items: selected},
	}
}

// selectItems always allocates, so the result never aliases items
func selectItems[T any](items []T, keep func(T) bool) []T {
	selected := make([]T, 0, len(items))
	for _, item := range items {
		if keep == nil || keep(item) {
			selected = append(selected, item)
		}
	}
	return selected
}
