package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/area-length-service/internal/circuitbreaker"
	"github.com/guttosm/area-length-service/internal/domain/dto"
	"github.com/guttosm/area-length-service/internal/i18n"
	"github.com/guttosm/area-length-service/internal/logger"
	"github.com/guttosm/area-length-service/internal/service"
)

// errorMapping ties a sentinel error to its HTTP status and message key.
type errorMapping struct {
	target error
	status int
	key    string
}

var errorMappings = []errorMapping{
	{service.ErrProductNotFound, http.StatusNotFound, i18n.ErrKeyProductNotFound},
	{service.ErrInvalidProduct, http.StatusBadRequest, i18n.ErrKeyValidationUnits},
	{service.ErrUnknownField, http.StatusBadRequest, i18n.ErrKeyValidationField},
	{service.ErrNotSteppable, http.StatusBadRequest, i18n.ErrKeyValidationField},
	{service.ErrInvalidDirection, http.StatusBadRequest, i18n.ErrKeyValidationDirection},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials},
	{service.ErrInvalidToken, http.StatusUnauthorized, i18n.ErrKeyInvalidToken},
	{service.ErrAuthNotConfigured, http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable},
	{service.ErrRepositoryNotConfigured, http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable},
	{circuitbreaker.ErrCircuitOpen, http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, i18n.ErrKeyTimeout},
}

// StatusForError returns the HTTP status and translation key for err.
// Unrecognised errors map to 500.
func StatusForError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.key
		}
	}
	return http.StatusInternalServerError, i18n.ErrKeyInternalError
}

// ErrorHandler returns a middleware that turns the last gin context error
// into a translated ErrorResponse. Handlers report failures with c.Error and
// return without writing.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)
		status, key := StatusForError(err.Err)

		log := logger.Logger()
		event := log.Warn()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status_code", status).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
			errorResp := dto.NewError(dto.ErrCodeFromStatus(status), message).
				WithRequestID(requestID)
			c.JSON(status, errorResp)
		}
	}
}
