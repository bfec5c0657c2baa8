// Package metrics exposes Prometheus metrics for the foreign data wrapper.
//
// Each Metrics instance owns an isolated registry and an HTTP server serving
// /metrics. Three connector metrics are always registered:
//
//	scans_total{status}                          begin-scan attempts by outcome
//	remote_request_duration_seconds{operation}   remote call latency
//	errors_total{kind}                           errors reported to the host
//
// Example:
//
//	m := metrics.NewMetrics(metrics.DefaultConfig())
//	factory := qdrantfdw.NewFactory(qdrantfdw.FactoryParams{Metrics: m})
//
// The wrapper accepts the MetricsCollector interface, so tests can pass their
// own implementation or a Metrics built on a throwaway registry.
package metrics
