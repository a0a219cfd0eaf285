// Package metrics defines the Prometheus collectors for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors registered on one registry.
type Metrics struct {
	gatherer prometheus.Gatherer

	SignupsTotal *prometheus.CounterVec

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New registers the collectors on a fresh registry that also carries the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		gatherer: reg,
		SignupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "activity_signups_total",
				Help: "Total number of signup attempts by activity and outcome",
			},
			[]string{"activity", "outcome"},
		),
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// ObserveSignup implements domain.SignupMetrics.
func (m *Metrics) ObserveSignup(activity, outcome string) {
	m.SignupsTotal.WithLabelValues(activity, outcome).Inc()
}

// ObserveRequest records one completed HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
