package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/area-length-service/internal/domain/model"
	"github.com/guttosm/area-length-service/internal/logger"
	"github.com/guttosm/area-length-service/internal/service"
)

// probePrefixes are logged to stderr but never persisted.
var probePrefixes = []string{"/healthz", "/readyz", "/metrics", "/swagger"}

// RequestLogger logs one line per request and, when loggingService is set,
// stores an activity entry for every non-probe request.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := &model.LogEntry{
			Timestamp:  time.Now(),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			Duration:   time.Since(start).Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			Subject:    GetSubject(c),
			ProductID:  c.Param("id"),
		}
		level := levelForStatus(entry.StatusCode)
		entry.Level = level.String()
		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			entry.Error = errs.Last().Error()
		}

		log := logger.Logger()
		event := log.WithLevel(level).
			Str("request_id", entry.RequestID).
			Str("method", entry.Method).
			Str("path", entry.Path).
			Int("status_code", entry.StatusCode).
			Int64("duration_ms", entry.Duration).
			Str("ip", entry.IP).
			Str("user_agent", entry.UserAgent)
		if entry.ProductID != "" {
			event = event.Str("product_id", entry.ProductID)
		}
		if entry.Error != "" {
			event = event.Str("error", entry.Error)
		}
		event.Msg("HTTP request")

		if loggingService != nil && !isProbe(entry.Path) {
			dispatch(loggingService, entry)
		}
	}
}

// levelForStatus maps a response status to the log level of its entry.
func levelForStatus(statusCode int) zerolog.Level {
	switch {
	case statusCode >= 500:
		return zerolog.ErrorLevel
	case statusCode >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

func isProbe(path string) bool {
	for _, prefix := range probePrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
