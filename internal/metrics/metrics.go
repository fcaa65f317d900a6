package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ghlbridge_requests_total",
			Help: "Bridge operations by outcome",
		},
		[]string{"operation", "outcome"}, // ok|validation_error|upstream_error|unavailable
	)

	UpstreamSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ghlbridge_upstream_request_seconds",
			Help:    "Latency of outbound GoHighLevel API calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

var registerOnce sync.Once

// MustRegister registers the bridge collectors once; the server constructor
// calls it and may run several times in tests.
func MustRegister(r prometheus.Registerer) {
	registerOnce.Do(func() {
		r.MustRegister(
			RequestsTotal,
			UpstreamSeconds,
		)
	})
}
