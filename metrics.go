package fastcluster

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// metrics/promcollector package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordAdd is called after each single-point add.
	// merged reports whether the point joined an existing cluster.
	RecordAdd(duration time.Duration, merged bool, err error)

	// RecordBatch is called after each bulk add. count is the batch size,
	// merged is how many points joined existing clusters.
	RecordBatch(count, merged int, duration time.Duration, err error)

	// RecordClusters is called after each Clusters read with the number of
	// clusters returned.
	RecordClusters(clusters int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(time.Duration, bool, error)       {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordClusters(int, time.Duration)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount       atomic.Int64
	AddErrors      atomic.Int64
	AddTotalNanos  atomic.Int64
	Merges         atomic.Int64
	Creates        atomic.Int64
	BatchCount     atomic.Int64
	BatchItems     atomic.Int64
	BatchErrors    atomic.Int64
	ClustersReads  atomic.Int64
	ClustersLatest atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(duration time.Duration, merged bool, err error) {
	b.AddCount.Add(1)
	b.AddTotalNanos.Add(duration.Nanoseconds())
	switch {
	case err != nil:
		b.AddErrors.Add(1)
	case merged:
		b.Merges.Add(1)
	default:
		b.Creates.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, merged int, _ time.Duration, err error) {
	b.BatchCount.Add(1)
	if err != nil {
		b.BatchErrors.Add(1)
		return
	}
	b.BatchItems.Add(int64(count))
	b.Merges.Add(int64(merged))
	b.Creates.Add(int64(count - merged))
}

// RecordClusters implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClusters(clusters int, _ time.Duration) {
	b.ClustersReads.Add(1)
	b.ClustersLatest.Store(int64(clusters))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:       b.AddCount.Load(),
		AddErrors:      b.AddErrors.Load(),
		AddAvgNanos:    b.getAvgAddNanos(),
		Merges:         b.Merges.Load(),
		Creates:        b.Creates.Load(),
		BatchCount:     b.BatchCount.Load(),
		BatchItems:     b.BatchItems.Load(),
		BatchErrors:    b.BatchErrors.Load(),
		ClustersReads:  b.ClustersReads.Load(),
		ClustersLatest: b.ClustersLatest.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgAddNanos() int64 {
	count := b.AddCount.Load()
	if count == 0 {
		return 0
	}
	return b.AddTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount       int64
	AddErrors      int64
	AddAvgNanos    int64
	Merges         int64
	Creates        int64
	BatchCount     int64
	BatchItems     int64
	BatchErrors    int64
	ClustersReads  int64
	ClustersLatest int64
}
