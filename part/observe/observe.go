// Package observe provides build observation utilities: in-process metrics
// aggregation over the core build hooks, and a bridge recording build
// activity on an OpenTelemetry meter.
package observe

import (
	"context"
	"sync"
	"time"

	"github.com/lguimbarda/min-part/part/core"
)

// BuildMetrics aggregates hook events across one or more builds.
type BuildMetrics struct {
	Builds          int64         // completed builds
	Entries         int64         // entries materialized, summed over builds
	PartitionsBuilt int64         // partition slots produced, empty ones included
	EmptyPartitions int64         // partitions with an effective count of zero
	MaxPartition    int           // largest effective count seen
	LastDuration    time.Duration // wall time of the most recent build
}

// Collector accumulates BuildMetrics from the builds run under a context
// it is attached to. Safe for use from concurrent builds over distinct
// builders.
type Collector struct {
	mu sync.Mutex
	m  BuildMetrics
}

// Attach returns a context whose builds report into the collector.
func (c *Collector) Attach(ctx context.Context) context.Context {
	return core.WithBuildHooks(ctx, core.BuildHooks{
		OnMaterialize: func(n int) {
			c.mu.Lock()
			c.m.Entries += int64(n)
			c.mu.Unlock()
		},
		OnPartition: func(_, cnt int) {
			c.mu.Lock()
			c.m.PartitionsBuilt++
			if cnt == 0 {
				c.m.EmptyPartitions++
			}
			if cnt > c.m.MaxPartition {
				c.m.MaxPartition = cnt
			}
			c.mu.Unlock()
		},
		OnComplete: func(stats core.BuildStats) {
			c.mu.Lock()
			c.m.Builds++
			c.m.LastDuration = stats.Duration
			c.mu.Unlock()
		},
	})
}

// Metrics returns a snapshot of the accumulated metrics.
func (c *Collector) Metrics() BuildMetrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.m
}
