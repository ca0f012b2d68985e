package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса.
// Все методы безопасны для nil-получателя, чтобы метрики можно было отключить конфигом.
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbConnections   *prometheus.GaugeVec

	queueTransitions    *prometheus.CounterVec
	waitlistMatches     *prometheus.HistogramVec
	waitEstimateMinutes *prometheus.HistogramVec
}

// New создает метрики и регистрирует их в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в указанном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),
		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),
		queueTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "queue_transitions_total",
			Help: "Applied queue and waitlist state transitions",
		}, []string{"service", "action"}),
		waitlistMatches: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "waitlist_matches_per_slot",
			Help:    "Number of waitlist candidates found for a freed slot",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20},
		}, []string{"service"}),
		waitEstimateMinutes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "queue_new_arrival_wait_minutes",
			Help:    "Estimated wait for a new walk-in arrival",
			Buckets: []float64{0, 5, 10, 15, 30, 45, 60, 90, 120, 180},
		}, []string{"service"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbConnections,
		m.queueTransitions,
		m.waitlistMatches,
		m.waitEstimateMinutes,
	)

	return m
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery учитывает выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
	if err != nil && err != sql.ErrNoRows {
		m.dbQueryErrors.WithLabelValues(m.serviceName, operation).Inc()
	}
}

// SetDBStats обновляет метрики пула соединений
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues(m.serviceName, "open").Set(float64(stats.OpenConnections))
	m.dbConnections.WithLabelValues(m.serviceName, "in_use").Set(float64(stats.InUse))
	m.dbConnections.WithLabelValues(m.serviceName, "idle").Set(float64(stats.Idle))
}

// IncQueueTransition учитывает переход состояния записи очереди или листа ожидания
func (m *Metrics) IncQueueTransition(action string) {
	if m == nil {
		return
	}
	m.queueTransitions.WithLabelValues(m.serviceName, action).Inc()
}

// ObserveWaitlistMatches учитывает количество кандидатов на освободившийся слот
func (m *Metrics) ObserveWaitlistMatches(count int) {
	if m == nil {
		return
	}
	m.waitlistMatches.WithLabelValues(m.serviceName).Observe(float64(count))
}

// ObserveWaitEstimate учитывает оценку ожидания для нового клиента
func (m *Metrics) ObserveWaitEstimate(minutes int) {
	if m == nil {
		return
	}
	m.waitEstimateMinutes.WithLabelValues(m.serviceName).Observe(float64(minutes))
}
