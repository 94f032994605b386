package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the Prometheus instruments exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	Navigations *prometheus.CounterVec
	SlideViews  *prometheus.CounterVec
	Subscribers prometheus.Gauge
}

// NewMetrics creates a self-contained registry. Each handler owns its
// own registry so tests can spin up servers side by side.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		Navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chalk_navigations_total",
			Help: "Cursor movements processed, by action.",
		}, []string{"action"}),
		SlideViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chalk_slide_views_total",
			Help: "Frames served per slide ID.",
		}, []string{"slide"}),
		Subscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "chalk_sse_subscribers",
			Help: "Currently connected SSE clients.",
		}),
	}

	registry.MustRegister(
		m.Navigations,
		m.SlideViews,
		m.Subscribers,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
