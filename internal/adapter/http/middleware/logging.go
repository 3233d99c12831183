package middleware

import (
	"net/http"
	"strings"
	"time"

	"marcenaria_site/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one line per request. /metrics and static assets are skipped.
func RequestLogger(log *logger.Logger, skipPrefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range skipPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}

		start := time.Now()
		c.Next()

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)),
			logger.String("client_ip", c.ClientIP()),
			logger.String("session_id", SessionID(c)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, logger.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// Recovery turns a panic into a 500. onPanic renders the body for the request type.
func Recovery(log *logger.Logger, onPanic func(c *gin.Context)) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic",
			logger.Any("panic", recovered),
			logger.String("path", c.Request.URL.Path),
			logger.String("session_id", SessionID(c)),
		)
		if onPanic != nil {
			onPanic(c)
			c.Abort()
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
