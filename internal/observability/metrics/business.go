package metrics

import "time"

// RecordUpstreamRequest records one call to the village API.
func RecordUpstreamRequest(operation, status string, duration time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(operation, status).Inc()
	UpstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordProbe records the outcome of an upstream readiness probe and
// updates the upstream_up gauge.
func RecordProbe(success bool) {
	if success {
		UpstreamUp.Set(1)
		UpstreamProbeRunsTotal.WithLabelValues("success").Inc()
		return
	}
	UpstreamUp.Set(0)
	UpstreamProbeRunsTotal.WithLabelValues("failure").Inc()
}

// RecordPageLoad records a page loader result. result is "ok" or a status code.
func RecordPageLoad(page, result string) {
	PageLoadsTotal.WithLabelValues(page, result).Inc()
}

// RecordSectionFailure records a page section that degraded to an error message.
func RecordSectionFailure(page, section string) {
	PageSectionFailuresTotal.WithLabelValues(page, section).Inc()
}

// RecordRateLimited records a request rejected by rate limiting.
func RecordRateLimited() {
	RateLimitRejectedTotal.Inc()
}
