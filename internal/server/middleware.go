package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	loggerKey       = "logger"
)

// requestID honors a caller-supplied X-Request-ID or generates one, and
// echoes it on the response so clients can correlate failures.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// requestIDFrom returns the correlation id assigned to this request.
func requestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// withLogger stashes the base logger on the context so handlers can log
// the failures they convert into responses.
func withLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(loggerKey, log)
		c.Next()
	}
}

func loggerFrom(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if log, ok := v.(*zap.Logger); ok {
			return log
		}
	}
	return zap.NewNop()
}

// requestLogger writes one summary line per request.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", requestIDFrom(c)),
		)
	}
}

// recovery converts panics into the generic 500 body. The stack never
// reaches the client; the panic value goes to the log.
func recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", requestIDFrom(c)),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody{
					Detail:    "Internal server error",
					RequestID: requestIDFrom(c),
				})
			}
		}()
		c.Next()
	}
}
