package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fdahk/Tjlogs/internal/logger"
)

// Logging writes one structured line per request. Server errors are logged
// at error level, everything else at info.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}

		log := logger.WithRequestID(GetRequestID(c))
		if status >= 500 {
			log.Error("HTTP request", attrs...)
			return
		}
		log.Info("HTTP request", attrs...)
	}
}
