package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/fdahk/Tjlogs/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("records HTTP request metrics", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/api/article/detail/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"code": 200})
		})

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/article/detail/:id", "200"))
		initialInFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

		req := httptest.NewRequest(http.MethodGet, "/api/article/detail/42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		newTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/article/detail/:id", "200"))
		assert.Equal(t, initialTotal+1, newTotal, "Request counter should be labelled by route, not by raw URL")

		afterInFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)
		assert.Equal(t, initialInFlight, afterInFlight, "In-flight should return to initial after request")
	})

	t.Run("records server errors", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/api/article/list", func(c *gin.Context) {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500})
		})

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/article/list", "500"))

		req := httptest.NewRequest(http.MethodGet, "/api/article/list", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		newTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/article/list", "500"))
		assert.Equal(t, initialTotal+1, newTotal, "500 counter should increment")
	})

	t.Run("unmatched routes share a label", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))

		req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		newTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))
		assert.Equal(t, initialTotal+1, newTotal)
	})

	t.Run("skips default probe and metrics endpoints", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		for _, p := range DefaultMetricsSkipPaths {
			router.GET(p, func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			})
		}

		for _, p := range DefaultMetricsSkipPaths {
			before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", p, "200"))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", p, "200"))
			assert.Equal(t, before, after, "%s should not be recorded", p)
		}
	})

	t.Run("custom skip list replaces the default", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics("/internal"))
		router.GET("/live", func(c *gin.Context) {
			c.String(http.StatusOK, "alive")
		})

		before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/live", "200"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))

		after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/live", "200"))
		assert.Equal(t, before+1, after)
	})
}

func TestMetricsMiddleware_ObservesDuration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Metrics())
	router.GET("/api/article/timed", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	before := testutil.CollectAndCount(metrics.HTTPRequestDuration)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/article/timed", nil))

	assert.Equal(t, before+1, testutil.CollectAndCount(metrics.HTTPRequestDuration),
		"a duration series should exist for the new route")
}
