package httpapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments for the simulation API.
type Metrics struct {
	registry *prometheus.Registry

	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	SimulationsTotal prometheus.Counter
	TrialsTotal      prometheus.Counter
}

// NewMetrics creates a self-contained metrics registry; nothing is registered
// globally, so tests can build as many instances as they like.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "revcast_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
			},
			[]string{"route", "status"},
		),

		RequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "revcast_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),

		SimulationsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "revcast_simulations_total",
				Help: "Total number of completed simulation requests",
			},
		),

		TrialsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "revcast_trials_total",
				Help: "Total number of Monte-Carlo trials executed",
			},
		),
	}

	m.registry.MustRegister(
		m.RequestDuration,
		m.RequestsInFlight,
		m.SimulationsTotal,
		m.TrialsTotal,
	)

	return m
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
