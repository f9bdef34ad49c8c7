package observe

import (
	"context"

	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/min-part/part/core"
)

// Instrument attaches hooks that record build activity on an OpenTelemetry
// meter: counters for materialized entries, built partitions and completed
// builds, a histogram of effective partition sizes, and a histogram of
// build durations in milliseconds.
func Instrument(ctx context.Context, meter metric.Meter) (context.Context, error) {
	entries, err := meter.Int64Counter("part.entries",
		metric.WithDescription("upstream entries materialized"))
	if err != nil {
		return nil, err
	}
	partitions, err := meter.Int64Counter("part.partitions",
		metric.WithDescription("partitions built, empty ones included"))
	if err != nil {
		return nil, err
	}
	builds, err := meter.Int64Counter("part.builds",
		metric.WithDescription("completed dataset builds"))
	if err != nil {
		return nil, err
	}
	sizes, err := meter.Int64Histogram("part.partition_size",
		metric.WithDescription("effective partition counts"))
	if err != nil {
		return nil, err
	}
	durations, err := meter.Int64Histogram("part.build_ms",
		metric.WithDescription("build wall time in milliseconds"))
	if err != nil {
		return nil, err
	}

	return core.WithBuildHooks(ctx, core.BuildHooks{
		OnMaterialize: func(n int) {
			entries.Add(ctx, int64(n))
		},
		OnPartition: func(_, cnt int) {
			partitions.Add(ctx, 1)
			sizes.Record(ctx, int64(cnt))
		},
		OnComplete: func(stats core.BuildStats) {
			builds.Add(ctx, 1)
			durations.Record(ctx, stats.Duration.Milliseconds())
		},
	}), nil
}
