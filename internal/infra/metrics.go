package infra

import (
	"sync/atomic"
	"time"
)

// Metrics provides lock-free observability counters for the fabric. The
// fabric itself is single-threaded and lock-free (spec.md §5); Metrics
// is the sole exception, since CLI/monitoring code may read a snapshot
// concurrently with ingest.
type Metrics struct {
	eventsIngested        atomic.Uint64
	algoExecutionsEmitted atomic.Uint64
	inquiriesCompleted    atomic.Uint64
	parseErrorsSkipped    atomic.Uint64
}

// GlobalMetrics is a package-level Metrics instance. The run command
// does not use it; it creates its own Metrics for each run.
var GlobalMetrics = &Metrics{}

// RecordEventIngested records one record successfully ingested by any
// Connector's Subscribe.
func (m *Metrics) RecordEventIngested() {
	m.eventsIngested.Add(1)
}

// RecordAlgoExecutionEmitted records one AlgoExecution emitted by
// AlgoExecutionService's spread-crossing decision rule.
func (m *Metrics) RecordAlgoExecutionEmitted() {
	m.algoExecutionsEmitted.Add(1)
}

// RecordInquiryCompleted records one inquiry reaching the DONE state.
func (m *Metrics) RecordInquiryCompleted() {
	m.inquiriesCompleted.Add(1)
}

// RecordParseErrorSkipped records one malformed record a Connector
// chose to skip rather than propagate.
func (m *Metrics) RecordParseErrorSkipped() {
	m.parseErrorsSkipped.Add(1)
}

// MetricsSnapshot is a point-in-time view of all metrics.
type MetricsSnapshot struct {
	EventsIngested        uint64
	AlgoExecutionsEmitted uint64
	InquiriesCompleted    uint64
	ParseErrorsSkipped    uint64
	Timestamp             time.Time
}

// Snapshot returns current metrics as a snapshot.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		EventsIngested:        m.eventsIngested.Load(),
		AlgoExecutionsEmitted: m.algoExecutionsEmitted.Load(),
		InquiriesCompleted:    m.inquiriesCompleted.Load(),
		ParseErrorsSkipped:    m.parseErrorsSkipped.Load(),
		Timestamp:             time.Now(),
	}
}

// Reset clears all metrics (for testing).
func (m *Metrics) Reset() {
	m.eventsIngested.Store(0)
	m.algoExecutionsEmitted.Store(0)
	m.inquiriesCompleted.Store(0)
	m.parseErrorsSkipped.Store(0)
}
