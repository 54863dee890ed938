package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/kamp-org/kamp_backend/internal/platform/metrics"
)

// MetricsMiddleware records request counts and latency labelled by route template.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		done := metrics.RequestStarted()
		c.Next()
		done(c.Request.Method, c.FullPath(), c.Writer.Status())
	}
}
