package middleware

import (
	"go-portfolio-backend/pkg/logger"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs each request once it completes. Health probes and static assets are skipped.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/api/health" || path == "/metrics" || strings.HasPrefix(path, "/static/") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"request_id", c.GetString(RequestIDKey),
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		switch {
		case status >= 500:
			logger.Log.Error("Request completed", attrs...)
		case status >= 400:
			logger.Log.Warn("Request completed", attrs...)
		default:
			logger.Log.Info("Request completed", attrs...)
		}
	}
}
