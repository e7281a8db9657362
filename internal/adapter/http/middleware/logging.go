package middleware

import (
	"fmt"
	"time"

	"kiosk_quote/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// RequestLogging tags the request context with a request id, method and path,
// and logs one line when the request completes.
func RequestLogging(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *gin.Context) {
		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header(requestIDHeader, reqID)

		ctx := log.WithFields(c.Request.Context(), map[string]any{
			"request_id": reqID,
			"method":     c.Request.Method,
			"path":       c.FullPath(),
		})
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		msg := fmt.Sprintf("[kiosk][http] request complete status=%d duration_ms=%d", c.Writer.Status(), time.Since(start).Milliseconds())
		// The handler chain may have enriched the context (operator id).
		ctx = c.Request.Context()
		if c.Writer.Status() >= 500 {
			log.Warn(ctx, msg)
			return
		}
		log.Info(ctx, msg)
	}
}

// Recovery turns a panic into a bare 500 and logs it.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.Nop()
	}
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error(c.Request.Context(), "[kiosk][http] recovered from panic", fmt.Errorf("%v", recovered))
		c.AbortWithStatus(500)
	})
}
