package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tallmate/trust-circle/internal/metrics"
)

// HTTPMetrics records request count and latency per matched route.
func HTTPMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.RecordHTTPRequest(c.Request.Method, routePath(c), c.Writer.Status(), time.Since(start))
	}
}

// routePath is the route template, so path parameters do not explode label cardinality.
func routePath(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return "unmatched"
}
