package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/area-length-service/internal/domain/dto"
	"github.com/guttosm/area-length-service/internal/i18n"
	"github.com/guttosm/area-length-service/internal/middleware"
	"github.com/guttosm/area-length-service/internal/service"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ProductsHandler serves the catalog endpoints: measurement metadata,
// calculator bootstrap data and the product page price block.
type ProductsHandler struct {
	*Handler
	stockThreshold int
}

// NewProductsHandler creates a catalog handler sharing h's product service,
// engine factory and locale settings.
func NewProductsHandler(h *Handler, stockThreshold int) *ProductsHandler {
	return &ProductsHandler{Handler: h, stockThreshold: stockThreshold}
}

// List handles GET /api/products requests.
//
// @Summary      List products
// @Description  Returns the measurement configuration of catalog products.
// @Tags         Products
// @Produce      json
// @Param        limit query int false "Maximum number of products (default 50, max 200)"
// @Success      200 {object} dto.SuccessResponse{data=dto.ProductListResponse} "Catalog entries"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/products [get]
func (h *ProductsHandler) List(c *gin.Context) {
	if h.products == nil {
		_ = c.Error(service.ErrRepositoryNotConfigured)
		return
	}

	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = min(n, maxListLimit)
		}
	}

	products, err := h.products.List(c.Request.Context(), limit)
	if err != nil {
		_ = c.Error(err)
		return
	}

	NewResponseBuilder(c).SuccessOK(dto.ProductListResponse{
		Products: products,
		Count:    len(products),
	})
}

// Get handles GET /api/products/:id requests.
//
// @Summary      Get product measurement configuration
// @Description  Returns the stored measurement metadata of one product.
// @Tags         Products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.SuccessResponse{data=model.ProductConfiguration} "Product configuration"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/products/{id} [get]
func (h *ProductsHandler) Get(c *gin.Context) {
	if h.products == nil {
		_ = c.Error(service.ErrRepositoryNotConfigured)
		return
	}

	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	NewResponseBuilder(c).SuccessOK(product)
}

// CalculatorInit handles GET /api/products/:id/calculator requests.
//
// @Summary      Calculator bootstrap
// @Description  Returns the page-load calculator state (the minimum order with the default margin), the rendered form fields, the margin menu and the localized labels.
// @Tags         Products
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        Accept-Language header string false "Label language (en, pl, pt)"
// @Success      200 {object} dto.SuccessResponse{data=dto.CalculatorInitResponse} "Calculator bootstrap data"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/products/{id}/calculator [get]
func (h *ProductsHandler) CalculatorInit(c *gin.Context) {
	product, err := h.resolveProduct(c.Request.Context(), dto.ProductRef{ProductID: c.Param("id")})
	if err != nil {
		_ = c.Error(err)
		return
	}

	locale := h.locale(c)
	form := service.NewForm(h.engines.Build(product, locale))
	labels := h.engines.Labels(locale)
	margins := h.engines.Margins()

	NewResponseBuilder(c).SuccessOK(dto.CalculatorInitResponse{
		Product: product,
		Result:  form.Result(),
		Fields:  form.Fields(),
		Margins: dto.MarginMenu{Options: margins.Options, Default: margins.Default},
		Unit:    labels.Units[product.Mode],
		Labels: map[string]string{
			"at_least": labels.AtLeast,
			"we_have":  labels.WeHave,
			"of":       labels.Of,
			"in_stock": labels.InStock,
		},
	})
}

// Price handles GET /api/products/:id/price requests.
//
// @Summary      Product price block
// @Description  Returns the formatted product page price: price per square meter and per package for area products, per piece for length products, and the availability line.
// @Tags         Products
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        Accept-Language header string false "Label language (en, pl, pt)"
// @Success      200 {object} dto.SuccessResponse{data=service.PriceDisplay} "Price block"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/products/{id}/price [get]
func (h *ProductsHandler) Price(c *gin.Context) {
	if h.products == nil {
		_ = c.Error(service.ErrRepositoryNotConfigured)
		return
	}

	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	displayer := service.NewPriceDisplayer(h.engines.Translator(), h.locale(c), h.engines.Currency(), h.stockThreshold)
	NewResponseBuilder(c).SuccessOK(displayer.Display(*product))
}

// Update handles PUT /api/products/:id requests.
//
// @Summary      Save product measurement metadata
// @Description  Creates or replaces the measurement configuration of a product. Unknown modes are stored as standard and a negative units per package is stored as its absolute value.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        request body dto.UpdateProductRequest true "Measurement metadata"
// @Param        Authorization header string true "Bearer token"
// @Success      200 {object} dto.SuccessResponse{data=model.ProductConfiguration} "Saved configuration"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - not a catalog admin"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Security     BearerAuth
// @Router       /api/products/{id} [put]
func (h *ProductsHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.products == nil {
		_ = c.Error(service.ErrRepositoryNotConfigured)
		return
	}

	req, err := BuildRequestAndValidate[dto.UpdateProductRequest](c)
	if err != nil {
		builder.BadRequest(err)
		return
	}

	productID := c.Param("id")
	saved, err := h.products.Save(c.Request.Context(), req.ToProduct(productID), middleware.GetSubject(c))
	if err != nil {
		auditLog(c, middleware.AuditEvent{
			ActionType: "product_update_failed",
			Message:    "Product configuration save failed",
			ProductID:  productID,
			Err:        err,
		})
		_ = c.Error(err)
		return
	}

	auditLog(c, middleware.AuditEvent{
		ActionType: "product_update",
		Message:    i18n.GetTranslator().Translate(i18n.SuccessKeyProductUpdated, i18n.DefaultLocale),
		ProductID:  saved.ProductID,
		Mode:       saved.Mode,
		Fields: map[string]interface{}{
			"units_per_package": saved.UnitsPerPackage,
			"version":           saved.Version,
		},
	})

	builder.SuccessOK(saved)
}
