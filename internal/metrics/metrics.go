package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Flightdeck.
type MetricsRegistry struct {
	// HTTP
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Database
	DBQueriesTotal  prometheus.CounterVec
	DBQueryDuration prometheus.HistogramVec

	// Cache
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business
	FlightsCreatedTotal     prometheus.Counter
	FlightsImportedTotal    prometheus.Counter
	ImportRowsRejectedTotal prometheus.Counter
	AnalyticsComputedTotal  prometheus.Counter
	AuditEventsTotal        prometheus.Counter
	AuditEventsDroppedTotal prometheus.Counter
	LoginsTotal             prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a registry with all metrics
// registered on the default Prometheus registerer.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_http_requests_total",
				Help: "Total HTTP requests by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightdeck_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "flightdeck_http_requests_in_flight",
				Help: "Currently executing HTTP requests",
			},
			[]string{"endpoint"},
		),
		DBQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_db_queries_total",
				Help: "Total database queries by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		DBQueryDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightdeck_db_query_duration_seconds",
				Help:    "Database query latency distribution in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"operation"},
		),
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_cache_hits_total",
				Help: "Cache hits by cache name",
			},
			[]string{"cache"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_cache_misses_total",
				Help: "Cache misses by cache name",
			},
			[]string{"cache"},
		),
		FlightsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flightdeck_flights_created_total",
				Help: "Flight records created through the API",
			},
		),
		FlightsImportedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flightdeck_flights_imported_total",
				Help: "Flight records created through CSV import",
			},
		),
		ImportRowsRejectedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flightdeck_import_rows_rejected_total",
				Help: "CSV import rows rejected during validation",
			},
		),
		AnalyticsComputedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flightdeck_analytics_computed_total",
				Help: "Analytics summaries computed (cache misses)",
			},
		),
		AuditEventsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flightdeck_audit_events_total",
				Help: "Audit events enqueued",
			},
		),
		AuditEventsDroppedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flightdeck_audit_events_dropped_total",
				Help: "Audit events dropped because the queue was full",
			},
		),
		LoginsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_logins_total",
				Help: "Login attempts by outcome",
			},
			[]string{"outcome"},
		),
	}
}
