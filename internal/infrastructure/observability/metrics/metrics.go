package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nothing",
			Name:      "requests_total",
			Help:      "Total number of requests answered",
		},
		[]string{"method"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nothing",
			Name:      "request_duration_seconds",
			Help:      "Request handling duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 15),
		},
		[]string{"method"},
	)

	RequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "nothing",
			Name:      "requests_in_flight",
			Help:      "Number of requests currently being handled",
		},
	)

	PanicsRecovered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nothing",
			Name:      "panics_recovered_total",
			Help:      "Total number of recovered handler panics",
		},
		[]string{"listener"},
	)
)

// Method collapses non-standard methods so arbitrary verbs cannot grow label cardinality.
func Method(method string) string {
	switch method {
	case "GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "CONNECT", "OPTIONS", "TRACE":
		return method
	default:
		return "OTHER"
	}
}

func RecordRequest(method string, duration float64) {
	m := Method(method)
	RequestsTotal.WithLabelValues(m).Inc()
	RequestDuration.WithLabelValues(m).Observe(duration)
}

func IncInFlight() {
	RequestsInFlight.Inc()
}

func DecInFlight() {
	RequestsInFlight.Dec()
}

func RecordPanic(listener string) {
	PanicsRecovered.WithLabelValues(listener).Inc()
}
