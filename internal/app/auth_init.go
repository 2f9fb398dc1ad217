package app

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/area-length-service/config"
	"github.com/guttosm/area-length-service/internal/service"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// InitializeAuth returns the catalog admin auth service, or nil when no
// administrator is configured. Without it the catalog is read-only.
func InitializeAuth(cfg config.AuthConfig) service.AuthService {
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		log.Info().Msg("No catalog administrator configured - product updates disabled")
		return nil
	}

	if _, err := bcrypt.Cost([]byte(cfg.AdminPasswordHash)); err != nil {
		log.Error().Err(err).Msg("ADMIN_PASSWORD_HASH is not a bcrypt hash - product updates disabled")
		return nil
	}

	if cfg.JWTSecretKey == "" || cfg.JWTSecretKey == defaultJWTSecret {
		log.Warn().Msg("JWT_SECRET_KEY is not set - using the development default")
	}

	log.Info().Str("admin", cfg.AdminEmail).Msg("Catalog administrator configured")
	return service.NewAuthService(cfg)
}
