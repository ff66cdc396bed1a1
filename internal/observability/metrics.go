package observability

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics collects and aggregates counters for conversion operations.
type Metrics struct {
	mu sync.Mutex

	// Counters
	requestTotal  atomic.Int64
	requestFailed atomic.Int64

	// Per-operation metrics
	operationMetrics map[string]*OperationMetrics

	// Duration window (FIFO, bounded)
	durations    []time.Duration
	maxDurations int
}

// OperationMetrics represents counters for one operation type.
type OperationMetrics struct {
	executionCount atomic.Int64
	totalDuration  atomic.Int64 // milliseconds
	errorCount     atomic.Int64
}

// NewMetrics creates a new metrics collector.
func NewMetrics(maxDurations int) *Metrics {
	if maxDurations <= 0 {
		maxDurations = 1000
	}
	return &Metrics{
		operationMetrics: make(map[string]*OperationMetrics),
		durations:        make([]time.Duration, 0, maxDurations),
		maxDurations:     maxDurations,
	}
}

// Global metrics instance.
var globalMetrics = NewMetrics(1000)

// GlobalMetrics returns the global metrics instance.
func GlobalMetrics() *Metrics {
	return globalMetrics
}

// RecordRequest records a request.
func (m *Metrics) RecordRequest(operation string) {
	m.requestTotal.Add(1)
	m.getOperationMetrics(operation).executionCount.Add(1)
}

// RecordFailure records a failed request.
func (m *Metrics) RecordFailure(operation string) {
	m.requestFailed.Add(1)
	m.getOperationMetrics(operation).errorCount.Add(1)
}

// RecordDuration records a request duration.
func (m *Metrics) RecordDuration(operation string, duration time.Duration) {
	m.mu.Lock()
	if len(m.durations) >= m.maxDurations {
		m.durations = m.durations[1:]
	}
	m.durations = append(m.durations, duration)
	m.mu.Unlock()

	m.getOperationMetrics(operation).totalDuration.Add(duration.Milliseconds())
}

// getOperationMetrics gets or creates the per-operation bucket.
func (m *Metrics) getOperationMetrics(operation string) *OperationMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	om, ok := m.operationMetrics[operation]
	if !ok {
		om = &OperationMetrics{}
		m.operationMetrics[operation] = om
	}
	return om
}

// Snapshot is a point-in-time view of the collected metrics.
type Snapshot struct {
	RequestTotal  int64                        `json:"requestTotal"`
	RequestFailed int64                        `json:"requestFailed"`
	Operations    map[string]OperationSnapshot `json:"operations"`
}

// OperationSnapshot is the per-operation slice of a Snapshot.
type OperationSnapshot struct {
	Executions        int64 `json:"executions"`
	Errors            int64 `json:"errors"`
	TotalDurationMs   int64 `json:"totalDurationMs"`
	AverageDurationMs int64 `json:"averageDurationMs"`
}

// GetSnapshot returns a copy of the current counters.
func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		RequestTotal:  m.requestTotal.Load(),
		RequestFailed: m.requestFailed.Load(),
		Operations:    make(map[string]OperationSnapshot, len(m.operationMetrics)),
	}

	for name, om := range m.operationMetrics {
		count := om.executionCount.Load()
		total := om.totalDuration.Load()
		avg := int64(0)
		if count > 0 {
			avg = total / count
		}
		snap.Operations[name] = OperationSnapshot{
			Executions:        count,
			Errors:            om.errorCount.Load(),
			TotalDurationMs:   total,
			AverageDurationMs: avg,
		}
	}

	return snap
}
