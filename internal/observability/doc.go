// Package observability groups the logging, metrics and tracing helpers of
// the village website backend.
//
// Subpackages:
//   - logging: slog construction and request-scoped loggers
//   - metrics: Prometheus metrics for HTTP, upstream and page loaders
//   - tracing: OpenTelemetry tracer provider, HTTP middleware and tracer access
package observability
