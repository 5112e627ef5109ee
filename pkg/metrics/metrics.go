package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Database query latency (seconds)
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"operation", "table"},
	)

	// Task write operation counts
	TaskOperationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "task_operation_count",
			Help: "Total number of task operations",
		},
		[]string{"operation"}, // operation: create, update, delete
	)

	// List cache outcomes
	CacheRequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_request_count",
			Help: "Total number of cache lookups",
		},
		[]string{"result"}, // result: hit, miss, error
	)

	// Broker publish outcomes
	EventPublishCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_publish_count",
			Help: "Total number of published task events",
		},
		[]string{"routing_key", "status"}, // status: success, failed
	)

	// Queries slower than the tracer threshold
	SlowQueryCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "db_slow_query_count",
			Help: "Total number of slow database queries",
		},
	)
)

// RecordHTTPRequestDuration records one HTTP request observation.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordDBQueryDuration records one database query observation.
func RecordDBQueryDuration(operation, table string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

// IncrementTaskOperation counts a successful task write.
func IncrementTaskOperation(operation string) {
	TaskOperationCount.WithLabelValues(operation).Inc()
}

// IncrementCacheRequest counts one cache lookup outcome.
func IncrementCacheRequest(result string) {
	CacheRequestCount.WithLabelValues(result).Inc()
}

// IncrementEventPublish counts one broker publish attempt.
func IncrementEventPublish(routingKey, status string) {
	EventPublishCount.WithLabelValues(routingKey, status).Inc()
}

// IncrementSlowQuery counts a query that exceeded the slow threshold.
func IncrementSlowQuery() {
	SlowQueryCount.Inc()
}
