package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track the requests served to site visitors.
var (
	// HTTPRequestsTotal counts HTTP requests by method, normalized path and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures request latency.
	// Buckets cover fast cached responses (5ms) up to slow upstream fan-outs (10s).
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestsInFlight tracks the number of requests being served.
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	// HTTPResponseSize measures response body size in bytes.
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// RateLimitRejectedTotal counts requests refused by the per-IP limiter.
	RateLimitRejectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limit_rejected_total",
			Help: "Total number of requests rejected by rate limiting",
		},
	)
)

// Upstream metrics track calls to the village REST API.
var (
	// UpstreamRequestsTotal counts upstream calls by operation and status.
	// Status is the HTTP status code, or "error" for transport failures.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of requests sent to the village API",
		},
		[]string{"operation", "status"},
	)

	// UpstreamRequestDuration measures upstream call latency per operation.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Village API request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
		},
		[]string{"operation"},
	)

	// UpstreamUp is 1 when the last readiness probe reached the village API.
	UpstreamUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "upstream_up",
			Help: "Whether the last probe of the village API succeeded (1) or not (0)",
		},
	)

	// UpstreamProbeRunsTotal counts readiness probe runs by result.
	UpstreamProbeRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_probe_runs_total",
			Help: "Total number of village API probe runs",
		},
		[]string{"result"},
	)
)

// Page metrics track page loader outcomes.
var (
	// PageLoadsTotal counts page loads by page and result ("ok" or the status code).
	PageLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_loads_total",
			Help: "Total number of page data loads",
		},
		[]string{"page", "result"},
	)

	// PageSectionFailuresTotal counts sections that degraded to an error
	// message on pages that load independently failing sections.
	PageSectionFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_section_failures_total",
			Help: "Total number of page sections that failed to load",
		},
		[]string{"page", "section"},
	)
)
