// Package metrics provides Prometheus metrics for backend requests made by
// the panels. It exports three metrics:
//   - pharmtui_backend_requests_total: Counter with endpoint and outcome labels
//   - pharmtui_backend_request_duration_seconds: Histogram with endpoint label
//   - pharmtui_backend_requests_in_flight: Gauge for outstanding requests
//
// Collectors are registered on the Registerer passed to New so tests can use
// a private registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeOK        = "ok"
	OutcomeTransport = "transport"
	OutcomeStatus    = "status"
	OutcomeDecode    = "decode"
	// OutcomeError covers requests that could not be built.
	OutcomeError = "error"
)

// Collectors groups the request metrics.
type Collectors struct {
	RequestTotals   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlight        prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		RequestTotals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pharmtui_backend_requests_total",
				Help: "Total backend requests",
			},
			[]string{"endpoint", "outcome"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pharmtui_backend_request_duration_seconds",
				Help:    "Backend request latency",
				Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"endpoint"},
		),
		InFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "pharmtui_backend_requests_in_flight",
				Help: "Current in-flight backend requests",
			},
		),
	}
	reg.MustRegister(c.RequestTotals, c.RequestDuration, c.InFlight)
	return c
}

// Start marks a request as in flight and returns the function that records
// its outcome.
func (c *Collectors) Start(endpoint string) func(outcome string) {
	start := time.Now()
	c.InFlight.Inc()
	return func(outcome string) {
		c.InFlight.Dec()
		c.RequestTotals.WithLabelValues(endpoint, outcome).Inc()
		c.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
