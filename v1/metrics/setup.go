package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing connector metrics.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// Each service maintains its own isolated registry to prevent metric name collisions.
	Registry *prometheus.Registry

	namespace  string
	registerer prometheus.Registerer

	scansTotal     *prometheus.CounterVec
	remoteDuration *prometheus.HistogramVec
	errorsTotal    *prometheus.CounterVec
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
// It sets up a dedicated Prometheus registry, registers the connector metrics
// and optionally the default system collectors, wraps everything with a
// constant `service` label, and creates an HTTP server exposing /metrics.
//
// Registered metrics:
//   - <ns>_scans_total{status}
//   - <ns>_remote_request_duration_seconds{operation}
//   - <ns>_errors_total{kind}
//
// Example:
//
//	m := metrics.NewMetrics(metrics.DefaultConfig())
//	go m.Server.ListenAndServe()
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// All metrics emitted by this service include service="<cfg.ServiceName>".
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		namespace:  cfg.Namespace,
		registerer: wrappedRegistry,
	}

	m.scansTotal = createCounterVec(cfg.Namespace, "scans_total", "Total number of begin-scan attempts by outcome", []string{"status"})
	m.remoteDuration = createHistogramVec(cfg.Namespace, "remote_request_duration_seconds", "Duration of remote vector service requests in seconds", []string{"operation"}, prometheus.DefBuckets)
	m.errorsTotal = createCounterVec(cfg.Namespace, "errors_total", "Total number of errors reported to the host by kind", []string{"kind"})

	wrappedRegistry.MustRegister(
		m.scansTotal,
		m.remoteDuration,
		m.errorsTotal,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	address := cfg.Address
	if address == "" {
		address = DefaultMetricsAddress
	}

	m.Server = &http.Server{
		Addr:    address,
		Handler: handler,
	}
	return m
}
