// Package core defines the core abstractions for local dataset
// partitioning: upstream entries, cursors and bounded windows over a
// materialized entry sequence, and seed-threaded transformer chains.
// It provides the foundational building blocks the part package's planner
// is assembled from.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other part packages.
package core

import "iter"

// Entry is a single key-value pair taken from an upstream collection.
// Entries are plain values: two entries are the same entry exactly when
// their pairs are equal.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Count drains seq and reports how many elements it yields.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Collect materializes seq into a slice.
func Collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}
