// Package tracing wires OpenTelemetry into the service: a tracer provider set up
// from configuration, and HTTP middleware that starts one server span per request
// and echoes the trace ID in X-Trace-Id so logs and client reports can be correlated.
package tracing
