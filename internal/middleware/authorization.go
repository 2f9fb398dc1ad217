// Package middleware provides role-based authorization middleware.
package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/area-length-service/internal/domain/dto"
	"github.com/guttosm/area-length-service/internal/i18n"
)

// RequireRole returns a middleware that lets a request through only when the
// token role is one of roles. It must run after JWTAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			abortUnauthorized(c, i18n.ErrKeyUnauthorized)
			return
		}

		if len(roles) > 0 && !slices.Contains(roles, claims.Role) {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyForbidden, i18n.GetLocale(c))
			errorResp := dto.NewError(dto.ErrCodeForbidden, message).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusForbidden, errorResp)
			return
		}

		c.Next()
	}
}

// RequireAdmin is RequireRole for the catalog administrator role.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(dto.RoleAdmin)
}
