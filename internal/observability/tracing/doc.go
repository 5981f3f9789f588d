// Package tracing integrates OpenTelemetry.
//
// Setup installs a tracer provider and the W3C trace-context propagator.
// Middleware starts a server span per request, and the village API client
// starts a client span per upstream call, so a page load and the upstream
// requests it triggers share one trace ID. The trace ID is also written to
// request logs and the X-Trace-Id response header.
package tracing
