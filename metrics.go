package apfind

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordValue is called after each pushed value.
	// scanned is the number of earlier values examined, extensions the number
	// of index entries created, duration the time taken.
	RecordValue(scanned, extensions int, duration time.Duration)

	// RecordImprovement is called whenever the best progression grows.
	RecordImprovement(length int)

	// RecordError is called when a push fails.
	RecordError(err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordValue(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordImprovement(int)               {}
func (NoopMetricsCollector) RecordError(error)                   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ValueCount       atomic.Int64
	ValueTotalNanos  atomic.Int64
	ScannedCount     atomic.Int64
	ExtensionCount   atomic.Int64
	ImprovementCount atomic.Int64
	BestLength       atomic.Int64
	ErrorCount       atomic.Int64
}

// RecordValue implements MetricsCollector.
func (b *BasicMetricsCollector) RecordValue(scanned, extensions int, duration time.Duration) {
	b.ValueCount.Add(1)
	b.ValueTotalNanos.Add(duration.Nanoseconds())
	b.ScannedCount.Add(int64(scanned))
	b.ExtensionCount.Add(int64(extensions))
}

// RecordImprovement implements MetricsCollector.
func (b *BasicMetricsCollector) RecordImprovement(length int) {
	b.ImprovementCount.Add(1)
	b.BestLength.Store(int64(length))
}

// RecordError implements MetricsCollector.
func (b *BasicMetricsCollector) RecordError(error) {
	b.ErrorCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ValueCount:       b.ValueCount.Load(),
		ValueAvgNanos:    b.getAvgValueNanos(),
		ScannedCount:     b.ScannedCount.Load(),
		ExtensionCount:   b.ExtensionCount.Load(),
		ImprovementCount: b.ImprovementCount.Load(),
		BestLength:       b.BestLength.Load(),
		ErrorCount:       b.ErrorCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgValueNanos() int64 {
	count := b.ValueCount.Load()
	if count == 0 {
		return 0
	}
	return b.ValueTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ValueCount       int64
	ValueAvgNanos    int64
	ScannedCount     int64
	ExtensionCount   int64
	ImprovementCount int64
	BestLength       int64
	ErrorCount       int64
}
