package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/area-length-service/internal/middleware"
)

// CalculatorRoutes registers the stateless calculator endpoints.
type CalculatorRoutes struct {
	handler *Handler
}

// NewCalculatorRoutes creates a new CalculatorRoutes instance.
func NewCalculatorRoutes(handler *Handler) *CalculatorRoutes {
	return &CalculatorRoutes{handler: handler}
}

// RegisterPublicRoutes registers the calculate and form endpoints.
func (r *CalculatorRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/calculate", r.handler.Calculate)

	form := rg.Group("/form")
	{
		form.POST("/input", r.handler.FormInput)
		form.POST("/step", r.handler.FormStep)
	}
}

// ProductRoutes registers the catalog endpoints.
type ProductRoutes struct {
	handler *ProductsHandler
}

// NewProductRoutes creates a new ProductRoutes instance.
func NewProductRoutes(handler *ProductsHandler) *ProductRoutes {
	return &ProductRoutes{handler: handler}
}

// RegisterPublicRoutes registers the read-only catalog endpoints.
func (r *ProductRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", r.handler.List)
		products.GET("/:id", r.handler.Get)
		products.GET("/:id/calculator", r.handler.CalculatorInit)
		products.GET("/:id/price", r.handler.Price)
	}
}

// RegisterProtectedRoutes registers the catalog admin endpoints on a group
// that already authenticates the caller.
func (r *ProductRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.PUT("/products/:id", middleware.RequireAdmin(), r.handler.Update)
}
