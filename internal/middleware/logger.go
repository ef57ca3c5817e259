package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"familytree/internal/service"
)

// RequestLogger 请求日志中间件
func RequestLogger(logger *service.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := map[string]string{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  strconv.Itoa(c.Writer.Status()),
			"latency": time.Since(start).String(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		entry := logger.WithFields(fields)
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request failed")
		case c.Writer.Status() >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	}
}
