package middleware

import (
	"time"

	"sui-balance-api/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware creates a middleware that tracks request metrics
func MetricsMiddleware(metricsCollector *metrics.MetricsCollector) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		metricsCollector.RecordRequest()

		c.Next()

		// Anything below 400 counts as success
		success := c.Writer.Status() < 400

		metricsCollector.RecordRequestComplete(time.Since(startTime), success)
	}
}
