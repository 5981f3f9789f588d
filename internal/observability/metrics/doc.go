// Package metrics provides the Prometheus metrics of the village website backend.
//
// Metrics fall into three groups:
//   - HTTP server metrics (requests, latency, sizes, in-flight)
//   - Upstream API metrics (requests and latency per operation, probe state)
//   - Page metrics (loader outcomes, partially degraded sections, rate-limit rejections)
//
// All metrics are registered with the Prometheus default registry and
// exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "butuhkidul/internal/observability/metrics"
//
//	start := time.Now()
//	err := client.Do(ctx, "/v1/villages", nil, &out)
//	metrics.RecordUpstreamRequest("villages.list", "200", time.Since(start))
package metrics
