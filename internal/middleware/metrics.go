// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fdahk/Tjlogs/internal/metrics"
)

// DefaultMetricsSkipPaths are routes polled by infrastructure rather than clients.
var DefaultMetricsSkipPaths = []string{"/metrics", "/live", "/ready"}

// Metrics returns a Gin middleware that records Prometheus metrics for HTTP requests.
// It tracks:
// - Total requests by method, route, and status code
// - Request duration histogram
// - Requests currently in flight
//
// Routes listed in skipPaths are not recorded. With no arguments
// DefaultMetricsSkipPaths is used.
func Metrics(skipPaths ...string) gin.HandlerFunc {
	if len(skipPaths) == 0 {
		skipPaths = DefaultMetricsSkipPaths
	}
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.FullPath()]; ok {
			c.Next()
			return
		}

		timer := metrics.NewTimer()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()

		// Unmatched routes share one label so arbitrary URLs cannot grow cardinality
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		timer.ObserveDuration(metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path))
	}
}
