package core

import (
	"context"
	"testing"
	"time"
)

func TestBuildHooks_NotifyAll(t *testing.T) {
	var materialized, parts int
	var completed BuildStats

	ctx := WithBuildHooks(context.Background(), BuildHooks{
		OnMaterialize: func(n int) { materialized = n },
		OnPartition:   func(_, _ int) { parts++ },
		OnComplete:    func(s BuildStats) { completed = s },
	})

	NotifyMaterialize(ctx, 9)
	NotifyPartition(ctx, 0, 5)
	NotifyPartition(ctx, 1, 4)
	NotifyComplete(ctx, BuildStats{Entries: 9, Partitions: 2, Duration: time.Millisecond})

	if materialized != 9 {
		t.Errorf("materialized = %d, want 9", materialized)
	}
	if parts != 2 {
		t.Errorf("partition notifications = %d, want 2", parts)
	}
	if completed.Entries != 9 || completed.Partitions != 2 {
		t.Errorf("completed stats = %+v, want Entries 9 Partitions 2", completed)
	}
}

func TestBuildHooks_ComposeFIFO(t *testing.T) {
	var order []string

	ctx := WithBuildHooks(context.Background(), BuildHooks{
		OnMaterialize: func(int) { order = append(order, "first") },
	})
	ctx = WithBuildHooks(ctx, BuildHooks{
		OnMaterialize: func(int) { order = append(order, "second") },
	})

	NotifyMaterialize(ctx, 1)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("hook order = %v, want [first second]", order)
	}
}

func TestBuildHooks_NoHooksIsNoop(t *testing.T) {
	ctx := context.Background()

	// Must not panic without hooks attached.
	NotifyMaterialize(ctx, 1)
	NotifyPartition(ctx, 0, 1)
	NotifyComplete(ctx, BuildStats{})
}

func TestBuildHooks_PartialHooks(t *testing.T) {
	called := false
	ctx := WithBuildHooks(context.Background(), BuildHooks{
		OnPartition: func(_, _ int) { called = true },
	})

	NotifyMaterialize(ctx, 3)
	NotifyComplete(ctx, BuildStats{})
	NotifyPartition(ctx, 0, 3)

	if !called {
		t.Error("OnPartition hook was not invoked")
	}
}
