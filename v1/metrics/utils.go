package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RecordScan increments the scan counter with a given status label.
// Example: metrics.RecordScan("ok")
func (m *Metrics) RecordScan(status string) {
	m.scansTotal.WithLabelValues(status).Inc()
}

// ObserveRemoteRequest records the duration (in seconds) of a remote call.
// Example: defer metrics.ObserveRemoteRequest(time.Now(), "get_collection")
func (m *Metrics) ObserveRemoteRequest(start time.Time, operation string) {
	m.remoteDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// IncrementErrors increments the error counter for a given kind.
// Example: metrics.IncrementErrors("remote")
func (m *Metrics) IncrementErrors(kind string) {
	m.errorsTotal.WithLabelValues(kind).Inc()
}

// CreateCounter creates a new CounterVec metric and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec(m.namespace, name, help, labels)
	m.registerer.MustRegister(counter)
	return counter
}

// CreateHistogram creates a new HistogramVec metric and registers it.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := createHistogramVec(m.namespace, name, help, labels, buckets)
	m.registerer.MustRegister(hist)
	return hist
}

// createCounterVec defines a new CounterVec with standard options.
func createCounterVec(namespace, name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

// createHistogramVec defines a new HistogramVec with configurable buckets.
func createHistogramVec(namespace, name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
			Buckets:   buckets,
		},
		labels,
	)
}
