package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/area-length-service/internal/domain/dto"
	"github.com/guttosm/area-length-service/internal/i18n"
	"github.com/guttosm/area-length-service/internal/middleware"
	"github.com/guttosm/area-length-service/internal/service"
)

// AuthHandler provides the catalog admin login.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Catalog admin login
// @Description  Authenticates the catalog administrator and returns a short-lived JWT access token for the product update endpoint.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.SuccessResponse{data=dto.LoginResponse} "Successful login"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      503 {object} dto.ErrorResponse "Admin login not configured"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.LoginRequest](c)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err, map[string]string{
				validationErr.Field: validationErr.Message,
			})
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		auditLog(c, middleware.AuditEvent{
			ActionType: "login_failed",
			Message:    "Failed admin login attempt",
			Err:        err,
			Fields:     map[string]interface{}{"email": req.Email},
		})
		_ = c.Error(err)
		return
	}

	auditLog(c, middleware.AuditEvent{
		ActionType: "login",
		Message:    "Catalog admin logged in",
		Fields:     map[string]interface{}{"email": req.Email},
	})

	builder.SuccessOK(resp)
}
