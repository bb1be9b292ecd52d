// Package observability groups the logging, metrics and tracing support shared by
// the API server, the worker and the admin CLI.
//
// Subpackages:
//   - logging: slog JSON logger and request-scoped helpers
//   - metrics: Prometheus series for newsroom activity
//   - tracing: OpenTelemetry tracer provider and HTTP middleware
package observability
