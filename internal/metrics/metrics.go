package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "datawise"

// Metrics holds the application collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ItemsCreatedTotal   *prometheus.CounterVec
	ItemCreateErrors    *prometheus.CounterVec
	AuthAttemptsTotal   *prometheus.CounterVec
}

// New creates the collectors and registers them together with the Go and process collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		ItemsCreatedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "items_created_total",
				Help:      "Total number of items created per resource kind",
			},
			[]string{"kind"},
		),
		ItemCreateErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "item_create_errors_total",
				Help:      "Total number of failed item creations per resource kind and error kind",
			},
			[]string{"kind", "error"},
		),
		AuthAttemptsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "auth_attempts_total",
				Help:      "Total number of login attempts by result",
			},
			[]string{"result"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ItemsCreatedTotal,
		m.ItemCreateErrors,
		m.AuthAttemptsTotal,
	)

	return m
}

// Registry returns the registry the collectors are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(method, path, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(elapsed.Seconds())
}

// ItemCreated records a successful item creation
func (m *Metrics) ItemCreated(kind string) {
	if m == nil {
		return
	}
	m.ItemsCreatedTotal.WithLabelValues(kind).Inc()
}

// ItemCreateFailed records a failed item creation
func (m *Metrics) ItemCreateFailed(kind, errKind string) {
	if m == nil {
		return
	}
	m.ItemCreateErrors.WithLabelValues(kind, errKind).Inc()
}

// AuthAttempt records a login attempt with result "success" or "failure"
func (m *Metrics) AuthAttempt(result string) {
	if m == nil {
		return
	}
	m.AuthAttemptsTotal.WithLabelValues(result).Inc()
}
