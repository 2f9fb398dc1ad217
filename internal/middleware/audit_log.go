// Package middleware provides audit logging utilities.
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/area-length-service/internal/domain/model"
	"github.com/guttosm/area-length-service/internal/service"
)

// ContextKeyLoggingService is the gin context key holding the service.LoggingService.
const ContextKeyLoggingService = "logging_service"

// AuditEvent describes one calculator or catalog action worth keeping in the
// activity log.
type AuditEvent struct {
	ActionType string
	Message    string
	ProductID  string
	Mode       model.Mode
	Trigger    string
	Err        error
	Fields     map[string]interface{}
}

// AuditLog records ev with the request context attached. Entries go through
// the async logger when one is running.
func AuditLog(loggingService service.LoggingService, c *gin.Context, ev AuditEvent) {
	if loggingService == nil {
		return
	}

	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      "info",
		Message:    ev.Message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Subject:    GetSubject(c),
		ActionType: ev.ActionType,
		ProductID:  ev.ProductID,
		Mode:       ev.Mode,
		Trigger:    ev.Trigger,
		Fields:     ev.Fields,
	}
	if ev.Err != nil {
		entry.Level = "error"
		entry.Error = ev.Err.Error()
	}

	dispatch(loggingService, entry)
}

// dispatch hands entry to the async logger, or writes it from a goroutine
// when the pool has not been started.
func dispatch(loggingService service.LoggingService, entry *model.LogEntry) {
	if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
		asyncLogger.Log(entry)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
