package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/area-length-service/internal/circuitbreaker"
)

func TestHealthHandler_Liveness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHealthHandler().Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	openBreaker := func() *circuitbreaker.CircuitBreaker {
		cb := circuitbreaker.New(circuitbreaker.Config{
			Name:             "products",
			FailureThreshold: 1,
			SuccessThreshold: 1,
			Timeout:          time.Minute,
		})
		_ = cb.Execute(context.Background(), func() error { return errors.New("down") })
		return cb
	}

	tests := []struct {
		name           string
		setupHandler   func() *HealthHandler
		expectedStatus int
		validate       func(*testing.T, map[string]interface{})
	}{
		{
			name:           "no checkers",
			setupHandler:   NewHealthHandler,
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]interface{}) {
				checks := body["checks"].(map[string]interface{})
				assert.Equal(t, "ok", checks["service"])
			},
		},
		{
			name: "healthy database",
			setupHandler: func() *HealthHandler {
				h := NewHealthHandler()
				h.RegisterChecker("mongodb", HealthCheckFunc(func(context.Context) error { return nil }))
				return h
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "ok", body["status"])
				checks := body["checks"].(map[string]interface{})
				assert.Equal(t, "ok", checks["mongodb"])
			},
		},
		{
			name: "failing database",
			setupHandler: func() *HealthHandler {
				h := NewHealthHandler()
				h.RegisterChecker("mongodb", HealthCheckFunc(func(context.Context) error {
					return errors.New("connection refused")
				}))
				return h
			},
			expectedStatus: http.StatusServiceUnavailable,
			validate: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "degraded", body["status"])
				checks := body["checks"].(map[string]interface{})
				assert.Equal(t, "connection refused", checks["mongodb"])
			},
		},
		{
			name: "open breaker is reported without failing readiness",
			setupHandler: func() *HealthHandler {
				h := NewHealthHandler()
				h.RegisterCircuitBreaker("products", openBreaker())
				return h
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]interface{}) {
				checks := body["checks"].(map[string]interface{})
				assert.Equal(t, "open", checks["products_circuit"])
				breakers := body["circuit_breakers"].([]interface{})
				require.Len(t, breakers, 1)
				assert.Equal(t, false, breakers[0].(map[string]interface{})["is_healthy"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			tt.setupHandler().Register(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			tt.validate(t, body)
		})
	}
}
