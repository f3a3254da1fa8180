package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tenancy_stats"

// Metrics holds the Prometheus instruments of the service
type Metrics struct {
	registry        *prometheus.Registry
	reportBuild     prometheus.Histogram
	reportProtocols prometheus.Counter
	reportFailures  prometheus.Counter
	httpRequests    *prometheus.CounterVec
}

// New creates the instruments on a private registry together with the Go and process collectors
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		reportBuild: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_build_seconds",
			Help:      "Time spent loading the snapshot and building a statistics report.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		reportProtocols: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_protocols_total",
			Help:      "Protocols processed by report builds.",
		}),
		reportFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_failures_total",
			Help:      "Report builds aborted because the snapshot could not be loaded.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		m.reportBuild,
		m.reportProtocols,
		m.reportFailures,
		m.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the registry the instruments are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the HTTP handler exposing the registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveReport records a completed report build
func (m *Metrics) ObserveReport(duration time.Duration, protocols int) {
	if m == nil {
		return
	}
	m.reportBuild.Observe(duration.Seconds())
	m.reportProtocols.Add(float64(protocols))
}

// ReportFailed records a report build that could not complete
func (m *Metrics) ReportFailed() {
	if m == nil {
		return
	}
	m.reportFailures.Inc()
}

// ObserveRequest records a served HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
