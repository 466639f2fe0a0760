// Package metrics exposes the Prometheus collectors of the simulation API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector provides application metrics collection
type Collector struct {
	registry *prometheus.Registry

	// API Metrics
	APIRequestsTotal   *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec
	APIErrorsTotal     *prometheus.CounterVec

	// Simulation Metrics
	SimulationsTotal           *prometheus.CounterVec
	SavingsCappedTotal         prometheus.Counter
	ProductionSubstitutedTotal prometheus.Counter
	SystemSizeKwc              prometheus.Histogram
}

// NewCollector creates a new metrics collector backed by its own registry,
// so several collectors can coexist in one process.
func NewCollector(namespace string) *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		APIRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Total number of API requests by endpoint, method, and status",
			},
			[]string{"endpoint", "method", "status"},
		),

		APIRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "API request duration in seconds",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"endpoint"},
		),

		APIErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_errors_total",
				Help:      "Total number of API errors by type",
			},
			[]string{"error_type", "endpoint"},
		),

		SimulationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "simulations_total",
				Help:      "Total number of simulations by country and region",
			},
			[]string{"country", "region"},
		),

		SavingsCappedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "savings_capped_total",
				Help:      "Simulations whose savings hit the bill-relative ceiling",
			},
		),

		ProductionSubstitutedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "production_substituted_total",
				Help:      "Simulations that replaced an implausible production figure",
			},
		),

		SystemSizeKwc: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "system_size_kwc",
				Help:      "Recommended installation size in kWc",
				Buckets:   []float64{2.5, 3, 6, 9},
			},
		),
	}
}

// Registry returns the registry every collector is registered on.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Timer provides timing functionality for operations
type Timer struct {
	start    time.Time
	observer prometheus.Observer
}

// NewTimer creates a new timer
func (c *Collector) NewTimer(histogram prometheus.Observer) *Timer {
	return &Timer{
		start:    time.Now(),
		observer: histogram,
	}
}

// ObserveDuration records the elapsed time since timer creation
func (t *Timer) ObserveDuration() time.Duration {
	duration := time.Since(t.start)
	if t.observer != nil {
		t.observer.Observe(duration.Seconds())
	}
	return duration
}

// RecordAPIRequest increments API request counter
func (c *Collector) RecordAPIRequest(endpoint, method, status string) {
	c.APIRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
}

// RecordAPIError increments API error counter
func (c *Collector) RecordAPIError(errorType, endpoint string) {
	c.APIErrorsTotal.WithLabelValues(errorType, endpoint).Inc()
}

// Simulation describes the parts of a result the collector tracks.
type Simulation struct {
	Country               string
	Region                string
	SystemSizeKwc         float64
	SavingsCapped         bool
	ProductionSubstituted bool
}

// RecordSimulation updates the simulation counters for one result.
func (c *Collector) RecordSimulation(s Simulation) {
	c.SimulationsTotal.WithLabelValues(s.Country, s.Region).Inc()
	c.SystemSizeKwc.Observe(s.SystemSizeKwc)
	if s.SavingsCapped {
		c.SavingsCappedTotal.Inc()
	}
	if s.ProductionSubstituted {
		c.ProductionSubstitutedTotal.Inc()
	}
}
