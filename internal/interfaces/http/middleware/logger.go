package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"complainthub.backend/pkg/logger"
)

// LoggerMiddleware logs every HTTP request through the structured logger.
// The request ID is expected in c.Request.Context(), set by
// RequestIDMiddleware.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		logger.LogRequest(c.Request.Context(), c.Request.Method, path, c.Writer.Status(), latency, c.ClientIP())
	}
}
