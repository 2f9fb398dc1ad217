// Package dto defines Data Transfer Objects for authentication.
package dto

// RoleAdmin is the only role issued by the login endpoint. It grants write
// access to the product catalog.
const RoleAdmin = "catalog_admin"

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Request to authenticate the catalog administrator
// @Example {"email": "admin@example.com", "password": "password123"}
type LoginRequest struct {
	// Email is the administrator's email address.
	Email string `json:"email" binding:"required,email" example:"admin@example.com"`
	// Password is the administrator's password.
	Password string `json:"password" binding:"required,min=6" example:"password123"`
} // @name LoginRequest

// LoginResponse represents the JSON response body for the login endpoint.
//
// @Description Successful authentication response with a JWT access token
// @Example {"access_token": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...", "token_type": "Bearer", "expires_in": 900}
type LoginResponse struct {
	// AccessToken is the signed JWT.
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// TokenType is always "Bearer".
	TokenType string `json:"token_type" example:"Bearer"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"900"`
} // @name LoginResponse

// Claims is the identity carried by a validated access token.
type Claims struct {
	Subject string `json:"sub"`
	Role    string `json:"role"`
}

// IsAdmin reports whether the claims grant catalog write access.
func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{
			Field:   "email",
			Message: "email is required",
		}
	}
	if len(r.Password) < 6 {
		return &ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		}
	}
	return nil
}
