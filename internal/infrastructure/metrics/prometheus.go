// Package metrics expone métricas Prometheus del servidor y de la construcción del reporte.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los collectors en un registry propio (no el global), así cada
// servidor y cada test tiene sus contadores.
type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	reportBuilds    *prometheus.CounterVec
	reportDuration  prometheus.Histogram
}

// New registra los collectors, más los de runtime de Go y del proceso.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "endpoint", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request durations.",
				Buckets: []float64{0.005, 0.025, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"method", "endpoint", "status"},
		),
		reportBuilds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_builds_total",
				Help: "Total number of report builds by result.",
			},
			[]string{"result"},
		),
		reportDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_build_duration_seconds",
				Help:    "Histogram of report build durations (load + aggregations).",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
			},
		),
	}
	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.reportBuilds,
		m.reportDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RecordRequest registra las métricas de una petición HTTP.
func (m *Metrics) RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	m.requestsTotal.WithLabelValues(method, endpoint, status).Inc()
	m.requestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// ObserveReportBuild implementa report.BuildObserver.
func (m *Metrics) ObserveReportBuild(d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.reportBuilds.WithLabelValues(result).Inc()
	m.reportDuration.Observe(d.Seconds())
}

// Handler devuelve el handler HTTP de exportación (formato de texto de Prometheus).
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry para tests y para registrar collectors adicionales.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// classifyStatus agrupa un código HTTP en su clase (2xx, 3xx, ...).
func classifyStatus(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 300 && statusCode < 400:
		return "3xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500 && statusCode < 600:
		return "5xx"
	}
	return "unknown"
}
