package middleware

import (
	"strconv"
	"time"

	"datawise-backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and duration by route template
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
