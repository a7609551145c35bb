// Package metrics provides Prometheus metrics collection for the storefront service.
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

	// CatalogQueryDuration tracks catalog query engine execution time.
	CatalogQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_query_duration_seconds",
			Help:    "Catalog query (search/filter/sort) duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	// CatalogQueryResults tracks result set sizes produced by the query engine.
	CatalogQueryResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_query_results",
			Help:    "Number of products returned by catalog queries",
			Buckets: []float64{0, 1, 4, 16, 64, 256, 1024},
		},
	)

	// CartOperationsTotal tracks cart commands by operation and outcome.
	CartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Total number of cart commands",
		},
		[]string{"operation", "status"},
	)

	// ProductFetchesTotal tracks product source fetches by endpoint and outcome.
	ProductFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_fetches_total",
			Help: "Total number of product source fetches",
		},
		[]string{"endpoint", "status"},
	)

	// CacheOperationsTotal tracks product cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// ActiveSessions tracks the number of live browse sessions.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_sessions",
			Help: "Number of live browse sessions",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCatalogQuery records metrics for one query engine run.
func RecordCatalogQuery(duration time.Duration, results int) {
	CatalogQueryDuration.Observe(duration.Seconds())
	CatalogQueryResults.Observe(float64(results))
}

// RecordCartOperation records metrics for a cart command.
func RecordCartOperation(operation, status string) {
	CartOperationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordProductFetch records metrics for a product source fetch.
func RecordProductFetch(endpoint, status string) {
	ProductFetchesTotal.WithLabelValues(endpoint, status).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}
