package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/area-length-service/internal/middleware"
)

// ActivityRoutes registers the activity log endpoint.
type ActivityRoutes struct {
	handler *ActivityHandler
}

// NewActivityRoutes creates a new ActivityRoutes instance.
func NewActivityRoutes(handler *ActivityHandler) *ActivityRoutes {
	return &ActivityRoutes{handler: handler}
}

// RegisterProtectedRoutes registers the administrator-only activity query.
func (r *ActivityRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.GET("/activity", middleware.RequireAdmin(), r.handler.List)
}
