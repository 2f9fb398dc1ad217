package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup defines routes that don't require authentication.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup defines routes that require authentication.
type ProtectedRouteGroup interface {
	// RegisterProtectedRoutes registers protected routes to the given router group.
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

var (
	_ PublicRouteGroup    = (*CalculatorRoutes)(nil)
	_ PublicRouteGroup    = (*ProductRoutes)(nil)
	_ ProtectedRouteGroup = (*ProductRoutes)(nil)
	_ PublicRouteGroup    = (*AuthRoutes)(nil)
	_ ProtectedRouteGroup = (*ActivityRoutes)(nil)
)
