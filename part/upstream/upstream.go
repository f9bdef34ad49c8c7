// Package upstream provides backing collections for dataset builds.
// Every source iterates its entries in a stable, documented order, which
// is what the planner's partition layout is defined over.
package upstream

import (
	"cmp"
	"context"
	"iter"
	"slices"

	"github.com/lguimbarda/min-part/part/core"
)

// Slice is an upstream collection with an explicit entry order.
// The zero value is an empty collection ready for use.
type Slice[K comparable, V any] struct {
	entries []core.Entry[K, V]
}

// NewSlice creates a collection holding entries in the given order.
// The slice is copied; later appends to the argument do not show through.
func NewSlice[K comparable, V any](entries []core.Entry[K, V]) *Slice[K, V] {
	return &Slice[K, V]{entries: slices.Clone(entries)}
}

// Add appends an entry at the end of the collection's order.
func (s *Slice[K, V]) Add(key K, value V) {
	s.entries = append(s.entries, core.Entry[K, V]{Key: key, Value: value})
}

// Len returns the number of entries.
func (s *Slice[K, V]) Len() int { return len(s.entries) }

// Entries iterates the collection in insertion order.
func (s *Slice[K, V]) Entries(_ context.Context) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range s.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// FromMap creates a collection from a Go map, ordered by ascending key.
// Go map iteration order is randomized per range statement; builds need
// the same order across the planner's passes, so the keys are sorted once
// at construction.
func FromMap[K cmp.Ordered, V any](m map[K]V) *Slice[K, V] {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	s := &Slice[K, V]{entries: make([]core.Entry[K, V], 0, len(m))}
	for _, k := range keys {
		s.entries = append(s.entries, core.Entry[K, V]{Key: k, Value: m[k]})
	}
	return s
}

// Func adapts a function to an upstream source. The function must yield
// the same entries in the same order every time it is ranged within one
// build.
type Func[K comparable, V any] func(ctx context.Context) iter.Seq2[K, V]

// Entries invokes the adapted function.
func (f Func[K, V]) Entries(ctx context.Context) iter.Seq2[K, V] {
	return f(ctx)
}
