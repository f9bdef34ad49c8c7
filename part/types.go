// Package part builds local datasets: it splits a keyed upstream
// collection into a fixed number of ordered partitions, applies an
// optional filter and a seed-threaded transformation chain, and derives a
// (context, data) pair per partition through caller-supplied builders.
//
// This package is the primary user-facing API. Most users should only
// need to import this package together with a source from part/upstream.
// The part/core subpackage contains low-level abstractions that are
// rarely needed directly.
package part

import (
	"context"
	"iter"

	"github.com/lguimbarda/min-part/part/core"
)

// Type aliases for core abstractions.
// These allow users to work with the package without importing core directly.
type (
	// Entry is a single key-value pair taken from an upstream collection.
	Entry[K comparable, V any] = core.Entry[K, V]

	// Transformer reshapes a partition's entry stream as a pure function
	// of (seed, input).
	Transformer[K comparable, V any] = core.Transformer[K, V]

	// Chain is a composable sequence of Transformers sharing one threaded seed.
	Chain[K comparable, V any] = core.Chain[K, V]

	// BuildHooks holds observation callbacks for a build.
	BuildHooks = core.BuildHooks

	// BuildStats summarizes one completed build.
	BuildStats = core.BuildStats
)

// Sentinel errors - re-exported from core.
var (
	ErrInvalidPartitions = core.ErrInvalidPartitions
	ErrNilSource         = core.ErrNilSource
	ErrNilBuilder        = core.ErrNilBuilder
)

// NewChain composes transformers into a chain with a zero base seed.
func NewChain[K comparable, V any](transformers ...Transformer[K, V]) *Chain[K, V] {
	return core.NewChain(transformers...)
}

// WithBuildHooks attaches build observation hooks to the context.
func WithBuildHooks(ctx context.Context, hooks BuildHooks) context.Context {
	return core.WithBuildHooks(ctx, hooks)
}

// Source is a read-only upstream collection. Entries must iterate in an
// order that is stable for the duration of one Build call; the partition
// layout is defined by that order.
type Source[K comparable, V any] interface {
	Entries(ctx context.Context) iter.Seq2[K, V]
}

// Filter reports whether an upstream pair belongs to the dataset.
// Filters are pure predicates, called once per entry during
// materialization.
type Filter[K comparable, V any] func(key K, value V) bool

// ContextBuilder derives the lightweight per-partition context from a
// finite lazy view of the partition's entries and its effective count.
// It is invoked at most once per non-empty partition.
type ContextBuilder[K comparable, V any, C any] func(view iter.Seq[Entry[K, V]], cnt int) (C, error)

// DataBuilder derives the per-partition data object from a finite lazy
// view of the partition's entries, its effective count, and the already
// built context. It is invoked at most once per non-empty partition,
// strictly after the corresponding ContextBuilder.
type DataBuilder[K comparable, V any, C, D any] func(view iter.Seq[Entry[K, V]], cnt int, partCtx C) (D, error)
