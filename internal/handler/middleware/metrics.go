package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

type HTTPObserver interface {
	ObserveHTTP(method, path string, status int, elapsed time.Duration)
}

// MetricsMiddleware labels by route template so path parameters do not explode cardinality.
func MetricsMiddleware(observer HTTPObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		observer.ObserveHTTP(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
