package core

import "iter"

// Transformer reshapes a partition's entry stream. The seed is threaded
// explicitly: implementations must be pure functions of (seed, input) and
// deterministic, because the planner applies the same transformer to
// independently windowed views of one partition and relies on every
// application yielding the same element count.
type Transformer[K comparable, V any] interface {
	Transform(seed int64, seq iter.Seq[Entry[K, V]]) iter.Seq[Entry[K, V]]
}

// Chain is a composable sequence of Transformers applied left to right,
// sharing one threaded seed. A Chain carries a base seed that callers may
// shift between builds; applying the chain never mutates it.
//
// A nil *Chain behaves as the empty chain.
type Chain[K comparable, V any] struct {
	transformers []Transformer[K, V]
	seed         int64
}

// NewChain composes transformers into a chain with a zero base seed.
func NewChain[K comparable, V any](transformers ...Transformer[K, V]) *Chain[K, V] {
	return &Chain[K, V]{transformers: transformers}
}

// IsEmpty reports whether the chain holds no transformers.
func (c *Chain[K, V]) IsEmpty() bool {
	return c == nil || len(c.transformers) == 0
}

// Append returns a new chain with t added after the existing transformers.
// The base seed is preserved.
func (c *Chain[K, V]) Append(t Transformer[K, V]) *Chain[K, V] {
	if c == nil {
		return NewChain(t)
	}
	next := make([]Transformer[K, V], 0, len(c.transformers)+1)
	next = append(next, c.transformers...)
	next = append(next, t)
	return &Chain[K, V]{transformers: next, seed: c.seed}
}

// Seed returns the chain's base seed.
func (c *Chain[K, V]) Seed() int64 {
	if c == nil {
		return 0
	}
	return c.seed
}

// SetSeed replaces the chain's base seed.
func (c *Chain[K, V]) SetSeed(seed int64) { c.seed = seed }

// ModifySeed replaces the base seed with fn(seed). Callers use this to
// shift the seed between builds; a build reads the base seed once at the
// start and threads its per-partition values locally.
func (c *Chain[K, V]) ModifySeed(fn func(int64) int64) { c.seed = fn(c.seed) }

// Transform applies every transformer in order, passing seed to each.
// The empty chain is the identity transformation.
func (c *Chain[K, V]) Transform(seed int64, seq iter.Seq[Entry[K, V]]) iter.Seq[Entry[K, V]] {
	if c == nil {
		return seq
	}
	for _, t := range c.transformers {
		seq = t.Transform(seed, seq)
	}
	return seq
}
