package part_test

import (
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/lguimbarda/min-part/part"
	"github.com/lguimbarda/min-part/part/upstream"
)

// closableData counts closes and can fail on demand.
type closableData struct {
	sum    int
	closed *int
	fail   error
}

func (c *closableData) Close() error {
	*c.closed++
	return c.fail
}

func buildClosable(t *testing.T, n, partitions int, fail error, closed *int) *part.Dataset[int, *closableData] {
	t.Helper()
	b, err := part.New(lettersSource(n), partitions)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ds, err := part.Build(context.Background(), b,
		func(view iter.Seq[part.Entry[int, string]], cnt int) (int, error) {
			return cnt, nil
		},
		func(view iter.Seq[part.Entry[int, string]], cnt int, partCtx int) (*closableData, error) {
			sum := 0
			for e := range view {
				sum += e.Key
			}
			return &closableData{sum: sum, closed: closed, fail: fail}, nil
		})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return ds
}

func TestDataset_Close(t *testing.T) {
	closed := 0
	ds := buildClosable(t, 6, 3, nil, &closed)

	if err := ds.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if closed != 3 {
		t.Errorf("closed %d data objects, want 3", closed)
	}
}

func TestDataset_CloseJoinsErrors(t *testing.T) {
	closeErr := errors.New("release failed")
	closed := 0
	ds := buildClosable(t, 4, 2, closeErr, &closed)

	err := ds.Close()
	if !errors.Is(err, closeErr) {
		t.Fatalf("Close error = %v, want %v", err, closeErr)
	}
	if closed != 2 {
		t.Errorf("closed %d data objects despite errors, want 2", closed)
	}
}

func TestDataset_CloseSkipsEmptyPartitions(t *testing.T) {
	closed := 0
	ds := buildClosable(t, 2, 5, nil, &closed)

	if err := ds.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if closed != 2 {
		t.Errorf("closed %d data objects, want 2 (3 partitions are empty)", closed)
	}
}

func TestCompute(t *testing.T) {
	closed := 0
	ds := buildClosable(t, 6, 2, nil, &closed)

	// Sum of keys 1..6 across partitions.
	total, ok := part.Compute(ds,
		func(d *closableData, _ int) int { return d.sum },
		func(acc, r int) int { return acc + r })
	if !ok || total != 21 {
		t.Errorf("Compute = (%d, %v), want (21, true)", total, ok)
	}
}

func TestComputeWithCtx(t *testing.T) {
	closed := 0
	ds := buildClosable(t, 5, 2, nil, &closed)

	// Each partition's context is its effective count.
	entries, ok := part.ComputeWithCtx(ds,
		func(cnt int, _ *closableData, _ int) int { return cnt },
		func(acc, r int) int { return acc + r })
	if !ok || entries != 5 {
		t.Errorf("ComputeWithCtx = (%d, %v), want (5, true)", entries, ok)
	}
}

func TestCompute_AllEmpty(t *testing.T) {
	b, err := part.New(upstream.NewSlice[int, string](nil), 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ds, err := part.Build(context.Background(), b, summarize, collectData)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if _, ok := part.Compute(ds,
		func(keysAndCtx, int) int { return 1 },
		func(acc, r int) int { return acc + r }); ok {
		t.Error("Compute over all-empty dataset reported a result")
	}
}
