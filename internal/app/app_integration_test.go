//go:build integration

package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/area-length-service/config"
)

func TestInitializeApp_Integration(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Cache:  config.CacheConfig{Size: 100, TTL: time.Minute, Shards: 4},
		Auth: config.AuthConfig{
			JWTSecretKey:      "integration-secret",
			JWTIssuer:         "area-length-service",
			AccessTokenTTL:    time.Minute,
			AdminEmail:        "admin@example.com",
			AdminPasswordHash: string(hash),
		},
		Database: integrationDatabaseConfig(t),
		Calculator: config.CalculatorConfig{
			StockDisplayThreshold: 1000,
			DefaultLocale:         "en",
		},
	}

	router, cleanup := InitializeApp(cfg)
	defer cleanup()

	send := func(method, path, body, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := send(http.MethodPost, "/api/auth/login", `{"email": "admin@example.com", "password": "password123"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = send(http.MethodPut, "/api/products/sku-mosaic", `{"mode": "mosaic", "units_per_package": 0.09, "price_per_unit": 12, "stock_on_hand": 2500}`, login.Data.AccessToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = send(http.MethodGet, "/api/products/sku-mosaic/price", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1000+ in stock")

	w = send(http.MethodGet, "/readyz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mongodb":"ok"`)
}
