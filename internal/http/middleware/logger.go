package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per request with the request id, status and latency.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Printf("[HTTP] request_id=%s method=%s path=%s status=%d latency_ms=%.3f ip=%s",
			GetRequestID(c),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			float64(time.Since(start).Microseconds())/1000.0,
			c.ClientIP(),
		)
	}
}
