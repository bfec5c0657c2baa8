// Package tracer wires OpenTelemetry tracing for the wrapper.
//
// The wrapper opens one span per begin-scan ("qdrant_fdw.begin_scan") with
// the collection name as an attribute and records remote failures on it.
// Spans are exported over OTLP/HTTP when Config.EnableExport is set.
package tracer
