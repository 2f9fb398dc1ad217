package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/guttosm/area-length-service/config"
	"github.com/guttosm/area-length-service/internal/domain/dto"
)

// defaultIssuer is used when the configuration leaves the issuer empty.
const defaultIssuer = "area-length-service"

// TokenService issues and validates admin access tokens.
type TokenService interface {
	// Issue signs an access token for subject with the given role.
	Issue(subject, role string) (*dto.LoginResponse, error)
	// Validate parses an access token and returns its claims.
	Validate(tokenString string) (*dto.Claims, error)
}

// ClaimsWithJWT is the signed token payload: the role plus the registered claims.
type ClaimsWithJWT struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenServiceImpl implements TokenService with HS256 signatures.
type TokenServiceImpl struct {
	secretKey      []byte
	issuer         string
	accessTokenTTL time.Duration
	now            func() time.Time
}

// TokenConfig holds configuration for the token service.
type TokenConfig struct {
	SecretKey      string
	Issuer         string
	AccessTokenTTL time.Duration
}

// NewTokenConfigFromAuthConfig creates TokenConfig from config.AuthConfig.
func NewTokenConfigFromAuthConfig(authConfig config.AuthConfig) TokenConfig {
	return TokenConfig{
		SecretKey:      authConfig.JWTSecretKey,
		Issuer:         authConfig.JWTIssuer,
		AccessTokenTTL: authConfig.AccessTokenTTL,
	}
}

// NewTokenService creates a new token service.
func NewTokenService(cfg TokenConfig) *TokenServiceImpl {
	issuer := cfg.Issuer
	if issuer == "" {
		issuer = defaultIssuer
	}
	ttl := cfg.AccessTokenTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &TokenServiceImpl{
		secretKey:      []byte(cfg.SecretKey),
		issuer:         issuer,
		accessTokenTTL: ttl,
		now:            time.Now,
	}
}

// Issue signs an access token for subject with the given role.
func (s *TokenServiceImpl) Issue(subject, role string) (*dto.LoginResponse, error) {
	if len(s.secretKey) == 0 {
		return nil, ErrAuthNotConfigured
	}
	if subject == "" {
		return nil, errors.New("subject is empty, cannot create token")
	}

	issuedAt := s.now()
	claims := &ClaimsWithJWT{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.accessTokenTTL.Seconds()),
	}, nil
}

// Validate parses an access token and returns its claims. Any parse,
// signature, issuer or expiry failure is reported as ErrInvalidToken.
func (s *TokenServiceImpl) Validate(tokenString string) (*dto.Claims, error) {
	if len(s.secretKey) == 0 {
		return nil, ErrAuthNotConfigured
	}

	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*ClaimsWithJWT)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &dto.Claims{Subject: claims.Subject, Role: claims.Role}, nil
}
