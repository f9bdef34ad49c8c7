package part

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/lguimbarda/min-part/part/core"
)

// Build materializes the builder's filtered entries, splits them into the
// builder's partitions, and derives a (context, data) pair per partition
// through ctxBuilder and dataBuilder. Partition p covers the contiguous
// window following partition p-1; all partitions share the nominal size
// max(1, N/partitions) except the last, which absorbs the remainder.
//
// When the chain is non-empty each partition's window is first counted
// through a seeded sizing pass, and the effective count - the number of
// entries the transformed stream yields - governs the builders' view
// sizes and the consumption bookkeeping for later partitions. The chain's
// seed carries forward across partitions, each partition adding its own
// index to the running value.
//
// Partitions with an effective count of zero get no builder invocation;
// their slots still exist in the returned dataset with absent context and
// data. Errors from either builder abort the build and propagate
// unmodified; data objects already built for earlier partitions are left
// to the caller to release.
//
// Build never mutates the builder or its chain, but it assumes the
// source iterates in the same order for all three of its passes.
func Build[K comparable, V any, C, D any](
	ctx context.Context,
	b *Builder[K, V],
	ctxBuilder ContextBuilder[K, V, C],
	dataBuilder DataBuilder[K, V, C, D],
) (*Dataset[C, D], error) {
	if b == nil || b.partitions < 1 {
		return nil, core.ErrInvalidPartitions
	}
	if ctxBuilder == nil {
		return nil, fmt.Errorf("%w: context builder", core.ErrNilBuilder)
	}
	if dataBuilder == nil {
		return nil, fmt.Errorf("%w: data builder", core.ErrNilBuilder)
	}

	start := time.Now()

	entries := b.materialize(ctx)
	n := len(entries)
	core.NotifyMaterialize(ctx, n)

	size := max(1, n/b.partitions)
	chain := b.chain
	seed := chain.Seed()

	// Three independent cursors over one materialized sequence: the
	// sizing pass and the two builder views each consume their own.
	sizingCur := core.NewCursor(entries)
	ctxCur := core.NewCursor(entries)
	dataCur := core.NewCursor(entries)

	contexts := make([]C, b.partitions)
	data := make([]D, b.partitions)
	counts := make([]int, b.partitions)
	empty := 0

	consumed := 0
	for p := 0; p < b.partitions; p++ {
		w := n - consumed
		if p < b.partitions-1 {
			w = min(size, w)
		}

		// The seed carries forward: each partition shifts the running
		// value by its own index.
		seed += int64(p)

		cnt := w
		if !chain.IsEmpty() {
			cnt = core.Count(chain.Transform(seed, core.Window(sizingCur, identity[K, V], w)))
		}

		// Exactly one of the two views is chain-transformed when the
		// chain is non-empty: the context view, matching the sizing
		// pass. Neither is transformed when the chain is empty.
		ctxView := view(ctxCur, chain, seed, cnt, true)
		dataView := view(dataCur, chain, seed, cnt, false)

		if cnt > 0 {
			partCtx, err := ctxBuilder(ctxView, cnt)
			if err != nil {
				return nil, err
			}
			partData, err := dataBuilder(dataView, cnt, partCtx)
			if err != nil {
				return nil, err
			}
			contexts[p] = partCtx
			data[p] = partData
		} else {
			empty++
		}

		counts[p] = cnt
		consumed += cnt
		core.NotifyPartition(ctx, p, cnt)
	}

	core.NotifyComplete(ctx, core.BuildStats{
		Entries:    n,
		Partitions: b.partitions,
		Empty:      empty,
		Duration:   time.Since(start),
	})

	return &Dataset[C, D]{contexts: contexts, data: data, counts: counts}, nil
}

// view resolves one of a partition's two windowed entry views: a bounded
// window of cnt entries over cur, chain-transformed only on the
// designated branch. Both branches consume exactly the window they cover
// from their cursor.
func view[K comparable, V any](
	cur *core.Cursor[K, V],
	chain *core.Chain[K, V],
	seed int64,
	cnt int,
	transformed bool,
) iter.Seq[core.Entry[K, V]] {
	window := core.Window(cur, identity[K, V], cnt)
	if transformed && !chain.IsEmpty() {
		return chain.Transform(seed, window)
	}
	return window
}

// identity is the window mapping that leaves entries unchanged.
func identity[K comparable, V any](e core.Entry[K, V]) core.Entry[K, V] { return e }
