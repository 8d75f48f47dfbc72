package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	TraceIDHeader     = "X-Trace-ID"
	TraceParentHeader = "traceparent"

	traceIDCtx = "traceID"
	loggerCtx  = "logger"
)

// Logger logs every request with zap and stores a request-scoped logger,
// tagged with the trace id, in the gin context.
func Logger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		traceID := traceIDFor(c)
		c.Set(traceIDCtx, traceID)
		c.Header(TraceIDHeader, traceID)

		reqLogger := base.With(zap.String("trace_id", traceID))
		c.Set(loggerCtx, reqLogger)

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			reqLogger.Error("HTTP request", fields...)
		case status >= 400:
			reqLogger.Warn("HTTP request", fields...)
		default:
			reqLogger.Info("HTTP request", fields...)
		}
	}
}

// traceIDFor prefers the active span, then the W3C traceparent header,
// then X-Trace-ID, and finally generates a new id.
func traceIDFor(c *gin.Context) string {
	if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
		return sc.TraceID().String()
	}
	// traceparent: version-traceid-parentid-flags
	if tp := c.GetHeader(TraceParentHeader); tp != "" {
		if parts := strings.Split(tp, "-"); len(parts) == 4 && len(parts[1]) == 32 {
			return parts[1]
		}
	}
	if id := strings.TrimSpace(c.GetHeader(TraceIDHeader)); id != "" {
		return id
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GetLogger returns the request-scoped logger, or fallback when Logger did not run.
func GetLogger(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if v, ok := c.Get(loggerCtx); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	if fallback == nil {
		return zap.NewNop()
	}
	return fallback
}

// GetTraceID returns the trace id assigned by Logger.
func GetTraceID(c *gin.Context) string {
	return c.GetString(traceIDCtx)
}
