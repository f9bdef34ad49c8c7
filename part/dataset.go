package part

import (
	"errors"
	"io"
)

// Dataset is the assembled result of one Build call: index-aligned
// per-partition contexts and data objects, position p in both lists
// corresponding to partition p. Partitions whose effective count is zero
// hold absent context and data.
type Dataset[C, D any] struct {
	contexts []C
	data     []D
	counts   []int
}

// Len returns the number of partitions, including empty ones.
func (ds *Dataset[C, D]) Len() int { return len(ds.counts) }

// Count returns partition p's effective count.
func (ds *Dataset[C, D]) Count(p int) int { return ds.counts[p] }

// Context returns partition p's context. The second result is false when
// the partition is empty and no context was built.
func (ds *Dataset[C, D]) Context(p int) (C, bool) {
	return ds.contexts[p], ds.counts[p] > 0
}

// Data returns partition p's data object. The second result is false when
// the partition is empty and no data was built.
func (ds *Dataset[C, D]) Data(p int) (D, bool) {
	return ds.data[p], ds.counts[p] > 0
}

// Close releases every data object of a non-empty partition that
// implements io.Closer, in partition order, and joins any errors.
// Contexts are plain values and have no release step.
func (ds *Dataset[C, D]) Close() error {
	var errs []error
	for p, d := range ds.data {
		if ds.counts[p] == 0 {
			continue
		}
		if closer, ok := any(d).(io.Closer); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// ComputeWithCtx maps fn over every non-empty partition in order and
// folds the results with reduce. The second result is false when every
// partition is empty and fn was never invoked.
func ComputeWithCtx[C, D, R any](
	ds *Dataset[C, D],
	fn func(partCtx C, data D, p int) R,
	reduce func(acc, r R) R,
) (R, bool) {
	var acc R
	first := true
	for p := range ds.counts {
		if ds.counts[p] == 0 {
			continue
		}
		r := fn(ds.contexts[p], ds.data[p], p)
		if first {
			acc = r
			first = false
			continue
		}
		acc = reduce(acc, r)
	}
	return acc, !first
}

// Compute is ComputeWithCtx for computations that do not need the
// partition context.
func Compute[C, D, R any](
	ds *Dataset[C, D],
	fn func(data D, p int) R,
	reduce func(acc, r R) R,
) (R, bool) {
	return ComputeWithCtx(ds, func(_ C, data D, p int) R { return fn(data, p) }, reduce)
}
