//go:build !integration

package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/area-length-service/config"
)

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "creates router with catalog disabled",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080", RateLimit: 100, RateWindow: time.Minute},
				Cache:  config.CacheConfig{Size: 1000, TTL: 5 * time.Minute, Shards: 4},
			},
		},
		{
			name: "creates router with API keys",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080"},
				Auth:   config.AuthConfig{Enabled: true, APIKeys: map[string]bool{"test-key": true}},
			},
		},
		{
			name: "creates router with cache disabled",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080"},
				Cache:  config.CacheConfig{Size: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, cleanup := InitializeApp(tt.cfg)
			require.NotNil(t, router)
			require.NotNil(t, cleanup)
			assert.NotPanics(t, cleanup)
		})
	}
}

func TestInitializeApp_ServesHealth(t *testing.T) {
	router, cleanup := InitializeApp(config.Load())
	defer cleanup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
