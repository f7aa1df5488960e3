package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware records request count, latency and payload sizes for every
// route it wraps.
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()

		inBytes := c.Request.ContentLength
		if inBytes < 0 {
			inBytes = 0 // chunked bodies report -1
		}

		c.Next()

		metrics.RecordHTTPRequest(
			c.Request.Method,
			c.Request.URL.Path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(started),
			inBytes,
			int64(c.Writer.Size()),
		)
	}
}
