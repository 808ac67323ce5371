package service

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation.
type MetricsService struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	rosterFetch     *prometheus.HistogramVec
	rosterFailures  prometheus.Counter
	lessonsCreated  prometheus.Counter
	lessonsDeleted  prometheus.Counter
	notifications   *prometheus.CounterVec
	exports         *prometheus.CounterVec
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	rosterFetch := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roster_fetch_duration_seconds",
		Help:    "Duration of remote roster CSV fetches",
		Buckets: prometheus.DefBuckets,
	}, []string{"roster"})

	rosterFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "roster_load_failures_total",
		Help: "Total failed roster load attempts",
	})

	lessonsCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lessons_created_total",
		Help: "Total lesson records added to the ledger",
	})

	lessonsDeleted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lessons_deleted_total",
		Help: "Total lesson records removed from the ledger",
	})

	notifications := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_total",
		Help: "Outcome of best-effort lesson notifications",
	}, []string{"outcome"})

	exports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "exports_total",
		Help: "Ledger exports by format",
	}, []string{"format"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, rosterFetch, rosterFailures,
		lessonsCreated, lessonsDeleted, notifications, exports, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		rosterFetch:     rosterFetch,
		rosterFailures:  rosterFailures,
		lessonsCreated:  lessonsCreated,
		lessonsDeleted:  lessonsDeleted,
		notifications:   notifications,
		exports:         exports,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{"method": method, "path": path, "status": strconv.Itoa(status)}
	m.requestDuration.With(labels).Observe(duration.Seconds())
	m.requestTotal.With(labels).Inc()
}

// ObserveRosterFetch records one remote CSV fetch.
func (m *MetricsService) ObserveRosterFetch(roster string, duration time.Duration) {
	if m == nil {
		return
	}
	m.rosterFetch.WithLabelValues(roster).Observe(duration.Seconds())
}

// RosterLoadFailed counts a failed load attempt.
func (m *MetricsService) RosterLoadFailed() {
	if m == nil {
		return
	}
	m.rosterFailures.Inc()
}

// LessonCreated counts a ledger append.
func (m *MetricsService) LessonCreated() {
	if m == nil {
		return
	}
	m.lessonsCreated.Inc()
}

// LessonDeleted counts a ledger removal.
func (m *MetricsService) LessonDeleted() {
	if m == nil {
		return
	}
	m.lessonsDeleted.Inc()
}

// NotificationOutcome counts a delivery attempt result ("sent",
// "skipped" or "failed").
func (m *MetricsService) NotificationOutcome(outcome string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(outcome).Inc()
}

// ExportRendered counts an export download by format.
func (m *MetricsService) ExportRendered(format string) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(format).Inc()
}
