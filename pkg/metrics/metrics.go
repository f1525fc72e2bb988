// Package metrics содержит Prometheus метрики сервиса
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллектор метрик сервиса (HTTP + база данных)
type Metrics struct {
	service string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec

	dbPoolOpenConns  *prometheus.GaugeVec
	dbPoolInUseConns *prometheus.GaugeVec
	dbPoolIdleConns  *prometheus.GaugeVec
	dbPoolWaitCount  *prometheus.GaugeVec
}

// New создает и регистрирует метрики в дефолтном регистре Prometheus
func New(service string) *Metrics {
	return &Metrics{
		service: service,

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation", "status"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"service", "operation"}),

		dbPoolOpenConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_open_connections",
			Help: "Number of open connections in the pool",
		}, []string{"service"}),

		dbPoolInUseConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),

		dbPoolIdleConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_idle_connections",
			Help: "Number of idle connections in the pool",
		}, []string{"service"}),

		dbPoolWaitCount: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),
	}
}

// ObserveHTTPRequest фиксирует завершившийся HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.service, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.service, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к базе данных
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueriesTotal.WithLabelValues(m.service, operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет gauge-метрики состояния connection pool
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	m.dbPoolOpenConns.WithLabelValues(m.service).Set(float64(stats.OpenConnections))
	m.dbPoolInUseConns.WithLabelValues(m.service).Set(float64(stats.InUse))
	m.dbPoolIdleConns.WithLabelValues(m.service).Set(float64(stats.Idle))
	m.dbPoolWaitCount.WithLabelValues(m.service).Set(float64(stats.WaitCount))
}
