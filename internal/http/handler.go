package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/area-length-service/internal/domain/dto"
	"github.com/guttosm/area-length-service/internal/domain/model"
	"github.com/guttosm/area-length-service/internal/i18n"
	"github.com/guttosm/area-length-service/internal/logger"
	"github.com/guttosm/area-length-service/internal/metrics"
	"github.com/guttosm/area-length-service/internal/middleware"
	"github.com/guttosm/area-length-service/internal/service"
)

const triggerInit = "init"

// Handler provides the calculator endpoints. It is stateless: every request
// carries the calculator state or the rendered form fields.
type Handler struct {
	products      service.ProductService
	engines       *service.EngineFactory
	defaultLocale string
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithDefaultLocale sets the locale used when a request has no Accept-Language header.
func WithDefaultLocale(locale string) HandlerOption {
	return func(h *Handler) {
		if locale != "" {
			h.defaultLocale = locale
		}
	}
}

// NewHandler creates a new Handler. products may be nil, in which case only
// requests carrying an inline product can be served.
func NewHandler(products service.ProductService, engines *service.EngineFactory, opts ...HandlerOption) *Handler {
	if engines == nil {
		engines = service.NewEngineFactory(nil, model.DefaultCurrency(), service.DefaultMarginOptions())
	}
	h := &Handler{
		products:      products,
		engines:       engines,
		defaultLocale: i18n.DefaultLocale,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// locale returns the label locale for the request.
func (h *Handler) locale(c *gin.Context) string {
	if c.GetHeader(i18n.AcceptLanguageHeader) == "" {
		return h.defaultLocale
	}
	return i18n.GetLocale(c)
}

// resolveProduct returns the configuration to calculate with: the inline
// product when one is sent, otherwise the catalog entry. Inline products skip
// the catalog save rules, so non-positive units per package stay inert.
func (h *Handler) resolveProduct(ctx context.Context, ref dto.ProductRef) (model.ProductConfiguration, error) {
	if ref.Product != nil {
		return ref.Product.WithOrderDefaults().WithStockBounds(), nil
	}
	if h.products == nil {
		return model.ProductConfiguration{}, service.ErrRepositoryNotConfigured
	}
	return h.products.ForCalculator(ctx, ref.ProductID)
}

// Calculate handles POST /api/calculate requests.
//
// @Summary      Run one calculator event
// @Description  Applies a single field edit to the calculator state and returns the reconciled state, the rendered summary and the add-to-cart fields. Without an event the page-load state is returned. The product is taken from the catalog by product_id or sent inline.
// @Tags         Calculator
// @Accept       json
// @Produce      json
// @Param        Accept-Language header string false "Label and message language (en, pl, pt)"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CalculateRequest true "Product, state and event"
// @Success      200 {object} dto.SuccessResponse{data=model.CalculationResult} "Reconciled state"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/calculate [post]
func (h *Handler) Calculate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CalculateRequest](c)
	if err != nil {
		builder.BadRequest(err)
		return
	}

	product, err := h.resolveProduct(c.Request.Context(), req.ProductRef)
	if err != nil {
		_ = c.Error(err)
		return
	}

	engine := h.engines.Build(product, h.locale(c))
	start := time.Now()

	trigger := triggerInit
	var result model.CalculationResult
	if req.Event == nil {
		result = engine.Init()
	} else {
		trigger = string(req.Event.Trigger)
		result = engine.Apply(req.State, *req.Event)
	}

	metrics.RecordCalculation(string(product.Mode), trigger, time.Since(start), result.Summary.Shortfall)
	calcLog := logger.ForCalculation(product.ProductID, string(product.Mode), trigger)
	calcLog.Debug().
		Int("packages", result.State.Packages).
		Int("purchasable", result.State.PurchasableQty).
		Msg("Calculation applied")
	auditLog(c, middleware.AuditEvent{
		ActionType: "calculate",
		Message:    i18n.GetTranslator().Translate(i18n.SuccessKeyCalculated, i18n.DefaultLocale),
		ProductID:  product.ProductID,
		Mode:       product.Mode,
		Trigger:    trigger,
		Fields: map[string]interface{}{
			"packages":    result.State.Packages,
			"purchasable": result.State.PurchasableQty,
			"shortfall":   result.Summary.Shortfall,
		},
	})

	builder.SuccessOK(result)
}

// FormInput handles POST /api/form/input requests.
//
// @Summary      Type into a calculator field
// @Description  Restores the calculator form from its rendered fields, stores the typed text in one field and fires the matching event. Locale-formatted numbers such as "2,5" are accepted.
// @Tags         Calculator
// @Accept       json
// @Produce      json
// @Param        Accept-Language header string false "Label and message language (en, pl, pt)"
// @Param        request body dto.FormInputRequest true "Product, rendered fields and the edit"
// @Success      200 {object} dto.SuccessResponse{data=dto.FormResponse} "Re-rendered form"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown field"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/form/input [post]
func (h *Handler) FormInput(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.FormInputRequest](c)
	if err != nil {
		builder.BadRequest(err)
		return
	}

	h.runForm(c, builder, req.ProductRef, req.Fields, req.Field, func(form *service.Form) (model.CalculationResult, error) {
		return form.Input(req.Field, req.Value)
	})
}

// FormStep handles POST /api/form/step requests.
//
// @Summary      Press a stepper button
// @Description  Adds or subtracts one step from a field and re-fires it. Package-denominated measurement fields step by the units per package; decrements stop at the field minimum.
// @Tags         Calculator
// @Accept       json
// @Produce      json
// @Param        Accept-Language header string false "Label and message language (en, pl, pt)"
// @Param        request body dto.FormStepRequest true "Product, rendered fields, field and direction"
// @Success      200 {object} dto.SuccessResponse{data=dto.FormResponse} "Re-rendered form"
// @Failure      400 {object} dto.ErrorResponse "Bad request - field has no stepper"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/form/step [post]
func (h *Handler) FormStep(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.FormStepRequest](c)
	if err != nil {
		builder.BadRequest(err)
		return
	}

	h.runForm(c, builder, req.ProductRef, req.Fields, req.Field, func(form *service.Form) (model.CalculationResult, error) {
		return form.Step(req.Field, service.Direction(req.Direction))
	})
}

func (h *Handler) runForm(
	c *gin.Context,
	builder *ResponseBuilder,
	ref dto.ProductRef,
	fields map[string]string,
	field string,
	edit func(*service.Form) (model.CalculationResult, error),
) {
	product, err := h.resolveProduct(c.Request.Context(), ref)
	if err != nil {
		_ = c.Error(err)
		return
	}

	form := service.RestoreForm(h.engines.Build(product, h.locale(c)), fields)
	start := time.Now()
	result, err := edit(form)
	if err != nil {
		_ = c.Error(err)
		return
	}

	metrics.RecordCalculation(string(product.Mode), field, time.Since(start), result.Summary.Shortfall)
	auditLog(c, middleware.AuditEvent{
		ActionType: "form_edit",
		Message:    i18n.GetTranslator().Translate(i18n.SuccessKeyFormEdited, i18n.DefaultLocale),
		ProductID:  product.ProductID,
		Mode:       product.Mode,
		Trigger:    field,
		Fields: map[string]interface{}{
			"packages": result.State.Packages,
		},
	})

	builder.SuccessOK(dto.NewFormResponse(form.Fields(), result))
}

// auditLog forwards ev to the logging service placed in the context by the router.
func auditLog(c *gin.Context, ev middleware.AuditEvent) {
	value, exists := c.Get(middleware.ContextKeyLoggingService)
	if !exists {
		return
	}
	if ls, ok := value.(service.LoggingService); ok && ls != nil {
		middleware.AuditLog(ls, c, ev)
	}
}
