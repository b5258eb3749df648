package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewCarrierRequestsTotal returns a Prometheus counter vector for outbound
// carrier calls, labeled by endpoint path and outcome.
func NewCarrierRequestsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "carrier_requests_total",
		Help: "Total number of outbound carrier API calls",
	}, []string{"path", "outcome"})
}

// NewSiteResolutionAttemptsTotal returns a Prometheus counter for issued
// site-search attempts.
func NewSiteResolutionAttemptsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "site_resolution_attempts_total",
		Help: "Total number of site-search attempts issued to the carrier",
	})
}

// NewSiteResolutionFailuresTotal returns a Prometheus counter for shipments
// whose site could not be resolved.
func NewSiteResolutionFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "site_resolution_failures_total",
		Help: "Total number of exhausted site resolutions",
	})
}
