package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pixell-river/hr-directory/pkg/logger"
)

// RequestLogger writes one access log entry per request, with the fields of
// the combined log format plus latency.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"remote_addr", c.ClientIP(),
			"method", c.Request.Method,
			"path", path,
			"proto", c.Request.Proto,
			"status", status,
			"size", c.Writer.Size(),
			"referer", c.Request.Referer(),
			"user_agent", c.Request.UserAgent(),
			"latency", time.Since(start),
		}
		if id := GetRequestID(c.Request.Context()); id != "" {
			fields = append(fields, "request_id", id)
		}

		switch {
		case status >= 500:
			log.Error("request", fields...)
		case status >= 400:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}
