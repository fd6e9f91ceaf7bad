package iterator

import (
	"math/rand"
	"time"
)

var _ Iterator[int] = (*Shuffle[int])(nil)

// Shuffle yields items in a random order. The permutation is computed
// once when the iterator is built; Reset replays the same order.
type Shuffle[T any] struct {
	cursor[T]
}

type shuffleOptions struct {
	source rand.Source
}

// ShuffleOption configures NewShuffle
type ShuffleOption func(*shuffleOptions)

// WithSeed makes the permutation reproducible for the given seed
func WithSeed(seed int64) ShuffleOption {
	return func(o *shuffleOptions) {
		o.source = rand.NewSource(seed)
	}
}

// WithSource draws the permutation from src.
// src is used once during construction and is not retained.
func WithSource(src rand.Source) ShuffleOption {
	return func(o *shuffleOptions) {
		o.source = src
	}
}

// NewShuffle returns an iterator over a shuffled copy of items.
// Without options the permutation is seeded from the clock.
func NewShuffle[T any](items []T, opts ...ShuffleOption) *Shuffle[T] {
	o := shuffleOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = rand.NewSource(time.Now().UnixNano())
	}

	shuffled := snapshot(items)
	rand.New(o.source).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return &Shuffle[T]{
		cursor: cursor[T]{items: shuffled},
	}
}
