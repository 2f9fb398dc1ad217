package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		method         string
		idempotencyKey string
		body           string
		expectedStatus int
		checkHeader    bool
	}{
		{
			name:           "processes request without idempotency key",
			method:         http.MethodPost,
			idempotencyKey: "",
			body:           `{"test": "data"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "processes GET request normally",
			method:         http.MethodGet,
			idempotencyKey: "test-key",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "processes POST with idempotency key",
			method:         http.MethodPost,
			idempotencyKey: "test-key-123",
			body:           `{"test": "data"}`,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultIdempotencyConfig()
			router := gin.New()
			router.Use(Idempotency(cfg))
			router.POST("/test", func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			})
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			})

			var bodyReader *bytes.Reader
			if tt.body != "" {
				bodyReader = bytes.NewReader([]byte(tt.body))
			} else {
				bodyReader = bytes.NewReader(nil)
			}

			req := httptest.NewRequest(tt.method, "/test", bodyReader)
			if tt.idempotencyKey != "" {
				req.Header.Set(IdempotencyKeyHeader, tt.idempotencyKey)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestIdempotency_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := DefaultIdempotencyConfig()
	cfg.Enabled = false
	cfg.Cache = nil

	router := gin.New()
	router.Use(Idempotency(cfg))
	router.POST("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader([]byte(`{"test": "data"}`)))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIdempotency_ReplaysSameRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := DefaultIdempotencyConfig()
	defer cfg.Cache.Stop()

	calls := 0
	router := gin.New()
	router.Use(Idempotency(cfg))
	router.PUT("/api/products/:id", func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"version": calls})
	})

	send := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/api/products/sku-1", bytes.NewReader([]byte(body)))
		req.Header.Set(IdempotencyKeyHeader, "save-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := send(`{"mode":"area"}`)
	second := send(`{"mode":"area"}`)
	third := send(`{"mode":"length"}`)

	assert.Equal(t, 2, calls)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.Empty(t, third.Header().Get("X-Idempotency-Replayed"))
	assert.Contains(t, third.Body.String(), `"version":2`)
}

func TestGenerateCacheKey(t *testing.T) {
	build := func(body string) *http.Request {
		return httptest.NewRequest(http.MethodPut, "/api/products/sku-1", bytes.NewReader([]byte(body)))
	}

	base := generateCacheKey("k", "admin", build("a"))
	assert.Len(t, base, 64)
	assert.Equal(t, base, generateCacheKey("k", "admin", build("a")))
	assert.NotEqual(t, base, generateCacheKey("k", "other", build("a")))
	assert.NotEqual(t, base, generateCacheKey("k", "admin", build("b")))
	assert.NotEqual(t, base, generateCacheKey("k2", "admin", build("a")))
}

func TestIdempotency_DoesNotCacheFailures(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := DefaultIdempotencyConfig()
	defer cfg.Cache.Stop()

	calls := 0
	router := gin.New()
	router.Use(RequestID(), Idempotency(cfg))
	router.POST("/api/calculate", func(c *gin.Context) {
		calls++
		if calls == 1 {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service_unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"packages": 5})
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/calculate", bytes.NewReader([]byte(`{"product_id":"oak"}`)))
		req.Header.Set(IdempotencyKeyHeader, "calc-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusServiceUnavailable, send().Code)
	second := send()
	third := send()

	assert.Equal(t, 2, calls)
	assert.Equal(t, http.StatusOK, third.Code)
	assert.Equal(t, "true", third.Header().Get(IdempotencyReplayedHeader))
	assert.Equal(t, second.Body.String(), third.Body.String())
	assert.Contains(t, third.Header().Get("Content-Type"), "application/json")
	assert.NotEqual(t, second.Header().Get(RequestIDHeader), third.Header().Get(RequestIDHeader))
}

func Test_replayableHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set(RequestIDHeader, "req-1")
	h.Set("X-RateLimit-Remaining", "4")
	h.Set("Vary", "Accept-Language")

	assert.Equal(t, map[string]string{
		"Content-Type": "application/json; charset=utf-8",
		"Vary":         "Accept-Language",
	}, replayableHeaders(h))
}
