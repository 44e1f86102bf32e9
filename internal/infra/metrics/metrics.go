package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "arches"

// Metrics owns a dedicated registry so parallel instances (tests, CLI) never collide.
type Metrics struct {
	registry *prometheus.Registry

	visitToggles        *prometheus.CounterVec
	proximityQuery      *prometheus.HistogramVec
	cacheLookups        *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbPoolOpen    prometheus.Gauge
	dbPoolInUse   prometheus.Gauge
	dbPoolIdle    prometheus.Gauge
	dbPoolWaitCnt prometheus.Gauge
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		visitToggles: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "visits",
			Name:      "toggles_total",
			Help:      "Committed visit toggles by outcome",
		}, []string{"outcome"}),

		proximityQuery: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "proximity",
			Name:      "query_seconds",
			Help:      "Latency of proximity lookups",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"strategy"}),

		cacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Result cache lookups by operation and result",
		}, []string{"operation", "result"}),

		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed",
		}, []string{"method", "path", "status"}),

		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "path"}),

		dbPoolOpen: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_conns_open",
			Help:      "Connections open in the database pool",
		}),
		dbPoolInUse: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_conns_in_use",
			Help:      "Connections currently in use",
		}),
		dbPoolIdle: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_conns_idle",
			Help:      "Idle connections in the database pool",
		}),
		dbPoolWaitCnt: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_wait_count",
			Help:      "Total times a caller waited for a connection",
		}),
	}
}

// RecordToggle counts a committed toggle.
func (m *Metrics) RecordToggle(outcome string) {
	m.visitToggles.WithLabelValues(outcome).Inc()
}

// ObserveProximityQuery records how long a proximity lookup took.
func (m *Metrics) ObserveProximityQuery(strategy string, elapsed time.Duration) {
	m.proximityQuery.WithLabelValues(strategy).Observe(elapsed.Seconds())
}

// RecordCacheLookup counts a cache hit, miss or error.
func (m *Metrics) RecordCacheLookup(operation, result string) {
	m.cacheLookups.WithLabelValues(operation, result).Inc()
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveDBStats copies connection pool statistics into gauges.
func (m *Metrics) ObserveDBStats(stats sql.DBStats) {
	m.dbPoolOpen.Set(float64(stats.OpenConnections))
	m.dbPoolInUse.Set(float64(stats.InUse))
	m.dbPoolIdle.Set(float64(stats.Idle))
	m.dbPoolWaitCnt.Set(float64(stats.WaitCount))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Gatherer exposes the registry for inspection.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
