package remote

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the server's Prometheus collectors.
//
// Metrics exposed (all namespaced with "stepwalk_remote_"):
//
//  1. requests_total (counter): labels algorithm, status (ok or an error code).
//  2. duration_seconds (histogram): compute latency, label algorithm.
//  3. steps (histogram): length of returned sequences, label algorithm.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	steps    *prometheus.HistogramVec
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stepwalk",
			Subsystem: "remote",
			Name:      "requests_total",
			Help:      "Sequence requests by algorithm and outcome.",
		}, []string{"algorithm", "status"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "stepwalk",
			Subsystem: "remote",
			Name:      "duration_seconds",
			Help:      "Time spent recording a sequence.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"algorithm"}),
		steps: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "stepwalk",
			Subsystem: "remote",
			Name:      "steps",
			Help:      "Number of steps in returned sequences.",
			Buckets:   prometheus.ExponentialBuckets(3, 4, 8),
		}, []string{"algorithm"}),
	}
}

func (m *Metrics) failed(algorithm, code string) {
	m.requests.WithLabelValues(algorithm, code).Inc()
}

func (m *Metrics) succeeded(algorithm string, took time.Duration, n int) {
	m.requests.WithLabelValues(algorithm, "ok").Inc()
	m.duration.WithLabelValues(algorithm).Observe(took.Seconds())
	m.steps.WithLabelValues(algorithm).Observe(float64(n))
}
