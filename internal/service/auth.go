package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/area-length-service/config"
	"github.com/guttosm/area-length-service/internal/domain/dto"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned when token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrAuthNotConfigured is returned when no signing key or admin account is set.
	ErrAuthNotConfigured = errors.New("authentication is not configured")
)

// AuthService authenticates the catalog administrator.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
}

// AuthServiceImpl implements AuthService against a single admin account held
// in configuration. The password is stored as a bcrypt hash.
type AuthServiceImpl struct {
	adminEmail   string
	adminHash    []byte
	tokenService TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(authConfig config.AuthConfig) AuthService {
	return NewAuthServiceWithTokenService(authConfig, NewTokenService(NewTokenConfigFromAuthConfig(authConfig)))
}

// NewAuthServiceWithTokenService creates a new authentication service with an existing TokenService.
func NewAuthServiceWithTokenService(authConfig config.AuthConfig, tokenService TokenService) AuthService {
	return &AuthServiceImpl{
		adminEmail:   strings.ToLower(strings.TrimSpace(authConfig.AdminEmail)),
		adminHash:    []byte(authConfig.AdminPasswordHash),
		tokenService: tokenService,
	}
}

// Login checks the admin credentials and returns a signed access token.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.adminEmail == "" || len(s.adminHash) == 0 {
		return nil, ErrAuthNotConfigured
	}

	email = strings.ToLower(strings.TrimSpace(email))
	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1
	// the hash is always checked so a wrong email costs the same as a wrong password
	passwordErr := bcrypt.CompareHashAndPassword(s.adminHash, []byte(password))
	if !emailMatch || passwordErr != nil {
		log.Warn().Str("email", email).Msg("Admin login rejected")
		return nil, ErrInvalidCredentials
	}

	resp, err := s.tokenService.Issue(s.adminEmail, dto.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	log.Info().Str("email", email).Msg("Admin logged in")
	return resp, nil
}

// ValidateToken validates an access token and returns its claims.
func (s *AuthServiceImpl) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.tokenService.Validate(tokenString)
}
