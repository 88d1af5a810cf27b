package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"gpuadvisor/internal/observability"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware counts responses by route template and status
func MetricsMiddleware(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		m.ObserveRequest(c.FullPath(), c.Writer.Status())
	}
}

// RequestLogger logs each request at debug level, errors at warn
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelDebug
		if status >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		logger.Log(c.Request.Context(), level, "HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"ip", c.ClientIP(),
		)
	}
}
