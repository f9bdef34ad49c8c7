// Package transform provides seed-threaded transformers for partition
// entry streams. Every transformer here is a pure function of its seed,
// its input sequence, and element positions, so repeated applications
// over equal windows yield identical results - the property the planner
// relies on to keep its sizing and builder views aligned.
package transform

import (
	"iter"
	"math/rand"

	"github.com/lguimbarda/min-part/part/core"
)

// Func adapts a plain function to a core.Transformer.
type Func[K comparable, V any] func(seed int64, seq iter.Seq[core.Entry[K, V]]) iter.Seq[core.Entry[K, V]]

// Transform invokes the adapted function.
func (f Func[K, V]) Transform(seed int64, seq iter.Seq[core.Entry[K, V]]) iter.Seq[core.Entry[K, V]] {
	return f(seed, seq)
}

// Take yields at most n entries of the input, seed-independent.
// If n <= 0 the output is empty.
func Take[K comparable, V any](n int) core.Transformer[K, V] {
	return Func[K, V](func(_ int64, seq iter.Seq[core.Entry[K, V]]) iter.Seq[core.Entry[K, V]] {
		return func(yield func(core.Entry[K, V]) bool) {
			taken := 0
			for e := range seq {
				if taken >= n {
					return
				}
				taken++
				if !yield(e) {
					return
				}
			}
		}
	})
}

// Subsample keeps a seed-dependent strict subsequence of the input: the
// entry at position i survives when the mixed value of (seed, i) falls
// below the num/den threshold. Order is preserved; changing the seed
// changes which positions survive. den must be positive and num within
// [0, den].
func Subsample[K comparable, V any](num, den int) core.Transformer[K, V] {
	return Func[K, V](func(seed int64, seq iter.Seq[core.Entry[K, V]]) iter.Seq[core.Entry[K, V]] {
		return func(yield func(core.Entry[K, V]) bool) {
			i := 0
			for e := range seq {
				keep := int(mix(seed, i)%uint64(den)) < num
				i++
				if !keep {
					continue
				}
				if !yield(e) {
					return
				}
			}
		}
	})
}

// Shuffle reorders the window deterministically per seed. The window is
// materialized before shuffling; the output count equals the input count.
func Shuffle[K comparable, V any]() core.Transformer[K, V] {
	return Func[K, V](func(seed int64, seq iter.Seq[core.Entry[K, V]]) iter.Seq[core.Entry[K, V]] {
		return func(yield func(core.Entry[K, V]) bool) {
			window := core.Collect(seq)
			rng := rand.New(rand.NewSource(seed))
			rng.Shuffle(len(window), func(a, b int) {
				window[a], window[b] = window[b], window[a]
			})
			for _, e := range window {
				if !yield(e) {
					return
				}
			}
		}
	})
}

// Resample replicates each entry a seed-dependent number of times with
// mean factor: floor(factor) copies always, one more when the mixed
// fraction of (seed, i) falls below the fractional part. Output size
// varies with the seed, which exercises the planner's effective-count
// bookkeeping. Factor must be >= 0; a factor below 1 drops entries.
func Resample[K comparable, V any](factor float64) core.Transformer[K, V] {
	return Func[K, V](func(seed int64, seq iter.Seq[core.Entry[K, V]]) iter.Seq[core.Entry[K, V]] {
		return func(yield func(core.Entry[K, V]) bool) {
			whole := int(factor)
			frac := factor - float64(whole)
			i := 0
			for e := range seq {
				copies := whole
				if fraction(mix(seed, i)) < frac {
					copies++
				}
				i++
				for c := 0; c < copies; c++ {
					if !yield(e) {
						return
					}
				}
			}
		}
	})
}

// mix hashes (seed, position) into a well-distributed 64-bit value using
// a splitmix64 step.
func mix(seed int64, i int) uint64 {
	x := uint64(seed) + uint64(i)*0x9e3779b97f4a7c15
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// fraction maps a 64-bit value onto [0, 1).
func fraction(x uint64) float64 {
	return float64(x>>11) / float64(1<<53)
}
