// Package metrics exposes Prometheus collectors for HTTP traffic, calculator
// events, the product cache and storage circuit breakers.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// CalculationsTotal counts reconciliation events by product mode and trigger.
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_events_total",
			Help: "Total number of calculator events applied",
		},
		[]string{"mode", "trigger"},
	)

	// CalculationDuration tracks how long a single event takes to reconcile.
	CalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "calculator_event_duration_seconds",
			Help:    "Calculator event duration in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	// ShortfallsTotal counts results where the purchasable quantity was clamped
	// below the required package count.
	ShortfallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_shortfalls_total",
			Help: "Total number of calculations clamped below the required packages",
		},
		[]string{"mode"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)

	// ActivityLogEntriesTotal counts activity log entries by queue outcome.
	ActivityLogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_log_entries_total",
			Help: "Total number of activity log entries by outcome",
		},
		[]string{"result"},
	)

	// CircuitBreakerState reports 0 (closed), 1 (open) or 2 (half-open) per breaker.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// CircuitBreakerTransitionsTotal counts breaker state changes.
	CircuitBreakerTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "to"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCalculation records one applied calculator event.
func RecordCalculation(mode, trigger string, duration time.Duration, shortfall bool) {
	CalculationDuration.Observe(duration.Seconds())
	CalculationsTotal.WithLabelValues(mode, trigger).Inc()
	if shortfall {
		ShortfallsTotal.WithLabelValues(mode).Inc()
	}
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// Activity log outcomes.
const (
	ActivityLogEnqueued = "enqueued"
	ActivityLogDropped  = "dropped"
	ActivityLogWritten  = "written"
	ActivityLogFailed   = "failed"
)

// RecordActivityLog adds n entries to the counter for result.
func RecordActivityLog(result string, n int) {
	ActivityLogEntriesTotal.WithLabelValues(result).Add(float64(n))
}

// RecordCircuitBreakerState publishes a breaker transition. state is the
// numeric value of circuitbreaker.State; label is its string form.
func RecordCircuitBreakerState(name string, state int, label string) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
	CircuitBreakerTransitionsTotal.WithLabelValues(name, label).Inc()
}
