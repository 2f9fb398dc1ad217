// Package logger configures the process-wide zerolog logger shared by the
// HTTP service and the walpctl CLI.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ServiceName is attached to every JSON log line.
const ServiceName = "area-length-service"

// Init sets the global level and output. Unknown or empty levels fall back
// to info. Pretty output goes to a console writer and omits the service field.
func Init(level string, pretty bool) {
	logLevel, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if pretty {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().
		Timestamp().
		Str("service", ServiceName).
		Logger()
}

// Logger returns the global logger instance.
func Logger() zerolog.Logger {
	return log.Logger
}

// WithContext returns the global logger with the given fields attached.
func WithContext(fields map[string]interface{}) zerolog.Logger {
	return log.Logger.With().Fields(fields).Logger()
}

// ForCalculation returns a logger tagged with the product and event of one
// calculator run.
func ForCalculation(productID, mode, trigger string) zerolog.Logger {
	ctx := log.Logger.With().Str("mode", mode).Str("trigger", trigger)
	if productID != "" {
		ctx = ctx.Str("product_id", productID)
	}
	return ctx.Logger()
}
