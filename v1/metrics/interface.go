package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector provides an interface for collecting and exposing connector metrics.
//
// This interface is implemented by the concrete *Metrics type.
type MetricsCollector interface {
	// RecordScan counts one begin-scan attempt with its outcome,
	// e.g. "ok", "options_error", "remote_error", "state_error".
	RecordScan(status string)

	// ObserveRemoteRequest records the duration of one remote call.
	ObserveRemoteRequest(start time.Time, operation string)

	// IncrementErrors counts one error reported to the host by kind.
	IncrementErrors(kind string)

	// CreateCounter creates a new CounterVec metric and registers it.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram creates a new HistogramVec metric and registers it.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec
}

var _ MetricsCollector = (*Metrics)(nil)
