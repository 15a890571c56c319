package middleware

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service collectors on a private registry.
type Metrics struct {
	registry           *prometheus.Registry
	requestsTotal      *prometheus.CounterVec
	requestsInProgress prometheus.Gauge
	analysesTotal      *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		requestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests, partitioned by method and status code.",
		}, []string{"method", "status"}),
		requestsInProgress: f.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "Number of HTTP requests currently being served.",
		}),
		analysesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "analyses_submitted_total",
			Help: "Total number of completed analyses, partitioned by service type.",
		}, []string{"service_type"}),
	}
}

// RegisterStored exposes the number of stored analyses as the analyses_stored gauge.
func (m *Metrics) RegisterStored(count func() float64) error {
	return m.registry.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "analyses_stored",
		Help: "Number of analyses currently held in the store.",
	}, count))
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveAnalysis counts one completed analysis.
func (m *Metrics) ObserveAnalysis(serviceType string) {
	m.analysesTotal.WithLabelValues(serviceType).Inc()
}

// Middleware tracks request counts and in-flight requests
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.requestsInProgress.Inc()
		defer m.requestsInProgress.Dec()

		wrapped := wrapWriter(w)
		next.ServeHTTP(wrapped, r)

		m.requestsTotal.WithLabelValues(r.Method, strconv.Itoa(wrapped.statusCode)).Inc()
	})
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
