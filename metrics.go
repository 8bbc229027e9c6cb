package probemap

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation. overwrote is
	// true when the key already existed and its value was replaced.
	RecordInsert(duration time.Duration, overwrote bool)

	// RecordSearch is called after each search operation. found is false
	// when the key was absent.
	RecordSearch(duration time.Duration, found bool)

	// RecordDelete is called after each delete operation. deleted is false
	// when the key was absent.
	RecordDelete(duration time.Duration, deleted bool)

	// RecordResize is called after each table rebuild, growing or
	// shrinking. duration covers the full reinsertion pass.
	RecordResize(oldSize, newSize int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, bool)     {}
func (NoopMetricsCollector) RecordSearch(time.Duration, bool)     {}
func (NoopMetricsCollector) RecordDelete(time.Duration, bool)     {}
func (NoopMetricsCollector) RecordResize(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertOverwrites atomic.Int64
	InsertTotalNanos atomic.Int64
	SearchCount      atomic.Int64
	SearchMisses     atomic.Int64
	SearchTotalNanos atomic.Int64
	DeleteCount      atomic.Int64
	DeleteMisses     atomic.Int64
	GrowCount        atomic.Int64
	ShrinkCount      atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, overwrote bool) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if overwrote {
		b.InsertOverwrites.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(duration time.Duration, found bool) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if !found {
		b.SearchMisses.Add(1)
	}
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(duration time.Duration, deleted bool) {
	b.DeleteCount.Add(1)
	if !deleted {
		b.DeleteMisses.Add(1)
	}
}

// RecordResize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResize(oldSize, newSize int, duration time.Duration) {
	if newSize > oldSize {
		b.GrowCount.Add(1)
	} else {
		b.ShrinkCount.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:      b.InsertCount.Load(),
		InsertOverwrites: b.InsertOverwrites.Load(),
		InsertAvgNanos:   avgNanos(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		SearchCount:      b.SearchCount.Load(),
		SearchMisses:     b.SearchMisses.Load(),
		SearchAvgNanos:   avgNanos(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		DeleteCount:      b.DeleteCount.Load(),
		DeleteMisses:     b.DeleteMisses.Load(),
		GrowCount:        b.GrowCount.Load(),
		ShrinkCount:      b.ShrinkCount.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount      int64
	InsertOverwrites int64
	InsertAvgNanos   int64
	SearchCount      int64
	SearchMisses     int64
	SearchAvgNanos   int64
	DeleteCount      int64
	DeleteMisses     int64
	GrowCount        int64
	ShrinkCount      int64
}
