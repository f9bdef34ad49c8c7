package part

import (
	"context"
	"fmt"

	"github.com/lguimbarda/min-part/part/core"
)

// Builder is the immutable configuration of a dataset build: an upstream
// source, an optional filter, a partition count, and a transformation
// chain. Builders are constructed by New and derived by WithFilter; an
// existing builder is never mutated.
//
// A single builder may back any number of sequential builds. Sharing one
// builder across concurrent builds is safe as long as nothing shifts the
// chain's base seed in between.
type Builder[K comparable, V any] struct {
	source     Source[K, V]
	filter     Filter[K, V]
	partitions int
	chain      *core.Chain[K, V]
}

// Option configures a Builder during construction.
type Option[K comparable, V any] func(*Builder[K, V])

// WithFilter sets the upstream filter. A nil filter accepts every entry.
func WithFilter[K comparable, V any](filter Filter[K, V]) Option[K, V] {
	return func(b *Builder[K, V]) {
		b.filter = filter
	}
}

// WithChain sets the transformation chain applied to every partition's
// entry stream. A nil chain is the empty (identity) chain.
func WithChain[K comparable, V any](chain *core.Chain[K, V]) Option[K, V] {
	return func(b *Builder[K, V]) {
		b.chain = chain
	}
}

// New constructs a builder over source with the given number of partitions.
// The partition count must be at least 1.
func New[K comparable, V any](source Source[K, V], partitions int, opts ...Option[K, V]) (*Builder[K, V], error) {
	if source == nil {
		return nil, core.ErrNilSource
	}
	if partitions < 1 {
		return nil, fmt.Errorf("%w: got %d", core.ErrInvalidPartitions, partitions)
	}

	b := &Builder[K, V]{
		source:     source,
		partitions: partitions,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// WithFilter returns a new builder whose filter is the conjunction of the
// receiver's filter and extra. The receiver is not modified; source,
// partition count and chain are shared.
func (b *Builder[K, V]) WithFilter(extra Filter[K, V]) *Builder[K, V] {
	derived := *b
	if prev := b.filter; prev != nil && extra != nil {
		derived.filter = func(k K, v V) bool {
			return prev(k, v) && extra(k, v)
		}
	} else if extra != nil {
		derived.filter = extra
	}
	return &derived
}

// Partitions returns the fixed partition count.
func (b *Builder[K, V]) Partitions() int { return b.partitions }

// Chain returns the transformation chain by reference, so callers can
// shift its base seed between builds. May be nil (the empty chain).
func (b *Builder[K, V]) Chain() *core.Chain[K, V] { return b.chain }

// materialize runs the filter over the source's entries in iteration
// order and collects the survivors. Executed once per build, never cached
// across builds.
func (b *Builder[K, V]) materialize(ctx context.Context) []core.Entry[K, V] {
	var entries []core.Entry[K, V]
	for k, v := range b.source.Entries(ctx) {
		if b.filter != nil && !b.filter(k, v) {
			continue
		}
		entries = append(entries, core.Entry[K, V]{Key: k, Value: v})
	}
	return entries
}
