package app

import (
	"os"

	"github.com/guttosm/area-length-service/internal/logger"
	"github.com/guttosm/area-length-service/internal/middleware"
	"github.com/guttosm/area-length-service/internal/service"
)

// InitializeLogger initializes the JSON logger with configuration from environment variables.
func InitializeLogger() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	pretty := os.Getenv("LOG_PRETTY") == "true"
	logger.Init(logLevel, pretty)
}

// InitializeActivityLogger starts the worker pool that persists request and
// audit entries. A nil logging service leaves activity logging off.
func InitializeActivityLogger(loggingService service.LoggingService) {
	if loggingService == nil {
		return
	}
	middleware.InitAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())
}

// StopActivityLogger drains queued entries and stops the workers.
func StopActivityLogger() {
	middleware.StopAsyncLogger()
}
