package core

import (
	"context"
	"time"
)

// BuildStats summarizes one completed build.
type BuildStats struct {
	Entries    int           // entries that passed the filter
	Partitions int           // partition slots in the result
	Empty      int           // partitions with an effective count of zero
	Duration   time.Duration // wall time of the whole build
}

// BuildHooks holds observation callbacks for a build.
// All fields are optional - nil means no observation for that event.
// Hooks are invoked synchronously during the build, so they should be
// fast to avoid slowing it down.
type BuildHooks struct {
	OnMaterialize func(n int)         // filtered entry sequence materialized
	OnPartition   func(part, cnt int) // partition built with its effective count
	OnComplete    func(BuildStats)    // build finished
}

// hooksKey is unexported to prevent collisions with user context keys.
type hooksKey struct{}

// WithBuildHooks attaches hooks to the context. Multiple calls compose in
// FIFO order - hooks from earlier calls are invoked before hooks from
// later calls.
func WithBuildHooks(ctx context.Context, hooks BuildHooks) context.Context {
	if ctx == nil {
		panic("nil context")
	}

	existing := buildHooks(ctx)
	sets := make([]*BuildHooks, len(existing)+1)
	copy(sets, existing)
	sets[len(existing)] = &hooks

	return context.WithValue(ctx, hooksKey{}, sets)
}

// buildHooks retrieves the attached hook sets, oldest first.
func buildHooks(ctx context.Context) []*BuildHooks {
	if ctx == nil {
		return nil
	}
	if sets, ok := ctx.Value(hooksKey{}).([]*BuildHooks); ok {
		return sets
	}
	return nil
}

// NotifyMaterialize invokes every OnMaterialize hook on the context.
func NotifyMaterialize(ctx context.Context, n int) {
	for _, h := range buildHooks(ctx) {
		if h.OnMaterialize != nil {
			h.OnMaterialize(n)
		}
	}
}

// NotifyPartition invokes every OnPartition hook on the context.
func NotifyPartition(ctx context.Context, part, cnt int) {
	for _, h := range buildHooks(ctx) {
		if h.OnPartition != nil {
			h.OnPartition(part, cnt)
		}
	}
}

// NotifyComplete invokes every OnComplete hook on the context.
func NotifyComplete(ctx context.Context, stats BuildStats) {
	for _, h := range buildHooks(ctx) {
		if h.OnComplete != nil {
			h.OnComplete(stats)
		}
	}
}
