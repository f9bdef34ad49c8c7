package part_test

import (
	"context"
	"iter"
	"testing"

	"github.com/lguimbarda/min-part/part"
	"github.com/lguimbarda/min-part/part/transform"
)

func benchBuild(b *testing.B, entries, partitions int, chain *part.Chain[int, string]) {
	b.Helper()
	builder, err := part.New(lettersSource(entries), partitions, part.WithChain(chain))
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	countCtx := func(view iter.Seq[part.Entry[int, string]], cnt int) (int, error) {
		return cnt, nil
	}
	sumData := func(view iter.Seq[part.Entry[int, string]], cnt int, partCtx int) (int, error) {
		sum := 0
		for e := range view {
			sum += e.Key
		}
		return sum, nil
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := part.Build(ctx, builder, countCtx, sumData); err != nil {
			b.Fatalf("Build: %v", err)
		}
	}
}

func BenchmarkBuild_EmptyChain(b *testing.B) {
	benchBuild(b, 10000, 16, nil)
}

func BenchmarkBuild_ShuffleChain(b *testing.B) {
	chain := part.NewChain(transform.Shuffle[int, string]())
	benchBuild(b, 10000, 16, chain)
}

func BenchmarkBuild_SubsampleChain(b *testing.B) {
	chain := part.NewChain(transform.Subsample[int, string](1, 2))
	benchBuild(b, 10000, 16, chain)
}
