package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aixtrade/nothing/internal/infrastructure/observability/metrics"
)

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.IncInFlight()
		defer metrics.DecInFlight()

		c.Next()

		metrics.RecordRequest(c.Request.Method, time.Since(start).Seconds())
	}
}
