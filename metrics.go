package simgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// tokens is the size of the entry's deduplicated token set.
	RecordInsert(tokens int, duration time.Duration)

	// RecordSearch is called after each search operation.
	// queryTokens is the size of the normalized query token set,
	// results the number of identifiers returned.
	RecordSearch(queryTokens, results int, duration time.Duration)

	// RecordDelete is called after each delete operation.
	// found is false when the identifier had no live entry.
	RecordDelete(found bool, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(int, time.Duration)      {}
func (NoopMetricsCollector) RecordSearch(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordDelete(bool, time.Duration)     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertTokens     atomic.Int64
	InsertTotalNanos atomic.Int64
	SearchCount      atomic.Int64
	SearchResults    atomic.Int64
	SearchTotalNanos atomic.Int64
	DeleteCount      atomic.Int64
	DeleteMisses     atomic.Int64
	DeleteTotalNanos atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(tokens int, duration time.Duration) {
	b.InsertCount.Add(1)
	b.InsertTokens.Add(int64(tokens))
	b.InsertTotalNanos.Add(duration.Nanoseconds())
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(queryTokens, results int, duration time.Duration) {
	b.SearchCount.Add(1)
	b.SearchResults.Add(int64(results))
	b.SearchTotalNanos.Add(duration.Nanoseconds())
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(found bool, duration time.Duration) {
	b.DeleteCount.Add(1)
	if !found {
		b.DeleteMisses.Add(1)
	}
	b.DeleteTotalNanos.Add(duration.Nanoseconds())
}

// Stats is a point-in-time view of BasicMetricsCollector counters.
type Stats struct {
	InsertCount   int64
	SearchCount   int64
	DeleteCount   int64
	SearchResults int64
}

// GetStats returns a snapshot of the collected counters.
func (b *BasicMetricsCollector) GetStats() Stats {
	return Stats{
		InsertCount:   b.InsertCount.Load(),
		SearchCount:   b.SearchCount.Load(),
		DeleteCount:   b.DeleteCount.Load(),
		SearchResults: b.SearchResults.Load(),
	}
}
