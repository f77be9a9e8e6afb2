package hubgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    decodeCounter   *prometheus.CounterVec
//	    decodeHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordDecode(format string, duration time.Duration, err error) {
//	    p.decodeCounter.WithLabelValues(format).Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordDecode is called after each sample decode performed by LoadAll.
	// format is the detected format tag ("PNG", "JPEG") or empty on failure.
	RecordDecode(format string, duration time.Duration, err error)

	// RecordBatchLoad is called after each LoadAll call.
	// count is the number of samples requested, failed is the number that failed.
	RecordBatchLoad(count, failed int, duration time.Duration)

	// RecordMetaWrite is called after each WriteDatasetMeta call.
	RecordMetaWrite(duration time.Duration, err error)

	// RecordMetaRead is called after each ReadDatasetMeta call.
	RecordMetaRead(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDecode(string, time.Duration, error) {}
func (NoopMetricsCollector) RecordBatchLoad(int, int, time.Duration)   {}
func (NoopMetricsCollector) RecordMetaWrite(time.Duration, error)      {}
func (NoopMetricsCollector) RecordMetaRead(time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	DecodeCount      atomic.Int64
	DecodeErrors     atomic.Int64
	DecodeTotalNanos atomic.Int64
	BatchLoadCount   atomic.Int64
	BatchLoadItems   atomic.Int64
	BatchLoadFailed  atomic.Int64
	MetaWriteCount   atomic.Int64
	MetaWriteErrors  atomic.Int64
	MetaReadCount    atomic.Int64
	MetaReadErrors   atomic.Int64
}

// RecordDecode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecode(_ string, duration time.Duration, err error) {
	b.DecodeCount.Add(1)
	b.DecodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DecodeErrors.Add(1)
	}
}

// RecordBatchLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchLoad(count, failed int, _ time.Duration) {
	b.BatchLoadCount.Add(1)
	b.BatchLoadItems.Add(int64(count))
	b.BatchLoadFailed.Add(int64(failed))
}

// RecordMetaWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMetaWrite(_ time.Duration, err error) {
	b.MetaWriteCount.Add(1)
	if err != nil {
		b.MetaWriteErrors.Add(1)
	}
}

// RecordMetaRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMetaRead(_ time.Duration, err error) {
	b.MetaReadCount.Add(1)
	if err != nil {
		b.MetaReadErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		DecodeCount:     b.DecodeCount.Load(),
		DecodeErrors:    b.DecodeErrors.Load(),
		DecodeAvgNanos:  b.getAvgDecodeNanos(),
		BatchLoadCount:  b.BatchLoadCount.Load(),
		BatchLoadItems:  b.BatchLoadItems.Load(),
		BatchLoadFailed: b.BatchLoadFailed.Load(),
		MetaWriteCount:  b.MetaWriteCount.Load(),
		MetaWriteErrors: b.MetaWriteErrors.Load(),
		MetaReadCount:   b.MetaReadCount.Load(),
		MetaReadErrors:  b.MetaReadErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgDecodeNanos() int64 {
	count := b.DecodeCount.Load()
	if count == 0 {
		return 0
	}
	return b.DecodeTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	DecodeCount     int64
	DecodeErrors    int64
	DecodeAvgNanos  int64
	BatchLoadCount  int64
	BatchLoadItems  int64
	BatchLoadFailed int64
	MetaWriteCount  int64
	MetaWriteErrors int64
	MetaReadCount   int64
	MetaReadErrors  int64
}
