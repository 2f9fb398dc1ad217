//go:build !integration

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/area-length-service/config"
)

func TestInitializeAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name      string
		cfg       config.AuthConfig
		expectNil bool
	}{
		{
			name:      "no admin configured",
			cfg:       config.AuthConfig{JWTSecretKey: "secret"},
			expectNil: true,
		},
		{
			name:      "email without hash",
			cfg:       config.AuthConfig{AdminEmail: "admin@example.com"},
			expectNil: true,
		},
		{
			name:      "plain text password is rejected",
			cfg:       config.AuthConfig{AdminEmail: "admin@example.com", AdminPasswordHash: "password123"},
			expectNil: true,
		},
		{
			name: "bcrypt hash enables admin login",
			cfg: config.AuthConfig{
				AdminEmail:        "admin@example.com",
				AdminPasswordHash: string(hash),
				JWTSecretKey:      "secret",
			},
		},
		{
			name: "development secret still enables login",
			cfg: config.AuthConfig{
				AdminEmail:        "admin@example.com",
				AdminPasswordHash: string(hash),
				JWTSecretKey:      defaultJWTSecret,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authService := InitializeAuth(tt.cfg)
			if tt.expectNil {
				assert.Nil(t, authService)
			} else {
				assert.NotNil(t, authService)
			}
		})
	}
}
