package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/souhail4real/freelanci-catalog/internal/metrics"
)

// Metrics записывает счётчик и длительность каждого HTTP запроса.
// В качестве path используется шаблон маршрута, а не конкретный URL,
// чтобы не раздувать кардинальность меток.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			path, c.Request.Method, strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(path, c.Request.Method).
			Observe(time.Since(started).Seconds())
	}
}
