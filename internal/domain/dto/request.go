// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"strings"

	"github.com/guttosm/area-length-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrMissingProduct is returned when neither product_id nor product is present.
	ErrMissingProduct = &ValidationError{
		Field:   "product_id",
		Message: "product_id or product is required",
	}
	// ErrInvalidTrigger is returned for an event trigger the engine does not know.
	ErrInvalidTrigger = &ValidationError{
		Field:   "event.trigger",
		Message: "unknown trigger",
	}
	// ErrMissingField is returned when a form request names no field.
	ErrMissingField = &ValidationError{
		Field:   "field",
		Message: "field is required",
	}
	// ErrInvalidDirection is returned for a stepper direction other than increment or decrement.
	ErrInvalidDirection = &ValidationError{
		Field:   "direction",
		Message: "must be increment or decrement",
	}
	// ErrInvalidUnits is returned when a measured product has no positive units per package.
	ErrInvalidUnits = &ValidationError{
		Field:   "units_per_package",
		Message: "must be non-zero for length, area and mosaic products",
	}
	// ErrInvalidTimeRange is returned when an activity query ends before it starts.
	ErrInvalidTimeRange = &ValidationError{
		Field:   "until",
		Message: "must not be before since",
	}
)

// ProductRef selects the product a calculator request runs against: either a
// catalog entry by id or an inline configuration. The inline product wins
// when both are sent.
type ProductRef struct {
	// ProductID is the catalog id of the product.
	ProductID string `json:"product_id,omitempty" example:"sku-oak-8mm"`
	// Product is an inline measurement configuration.
	Product *model.ProductConfiguration `json:"product,omitempty"`
}

// Validate checks that the reference names a product.
func (r *ProductRef) Validate() error {
	if r.Product == nil && strings.TrimSpace(r.ProductID) == "" {
		return ErrMissingProduct
	}
	return nil
}

// CalculateRequest represents the JSON request body for the calculate endpoint.
//
// The request carries the full calculator state, so the endpoint is stateless.
// When Event is omitted the page-load calculation is returned.
//
// @Description Request to apply one field edit to the calculator state
// @Example {"product_id": "sku-oak-8mm", "state": {"margin_percent": 10}, "event": {"trigger": "dimensions", "length": 5, "width": 2}}
type CalculateRequest struct {
	ProductRef
	// State is the calculator state returned by the previous call.
	State model.CalculationState `json:"state"`
	// Event is the field edit to apply.
	Event *model.Event `json:"event,omitempty"`
} // @name CalculateRequest

// Validate performs custom validation on the request.
func (r *CalculateRequest) Validate() error {
	if err := r.ProductRef.Validate(); err != nil {
		return err
	}
	if r.Event != nil && !r.Event.Trigger.Valid() {
		return ErrInvalidTrigger
	}
	return nil
}

// FormInputRequest represents the JSON request body for the form input endpoint.
//
// Fields holds the text of every calculator field as last rendered; Value is
// the new text typed into Field.
//
// @Description Request to type a value into one calculator field
// @Example {"product_id": "sku-oak-8mm", "fields": {"margin": "10", "packages": "1"}, "field": "length", "value": "5"}
type FormInputRequest struct {
	ProductRef
	Fields map[string]string `json:"fields,omitempty"`
	Field  string            `json:"field" binding:"required" example:"length"`
	Value  string            `json:"value" example:"5"`
} // @name FormInputRequest

// Validate performs custom validation on the request.
func (r *FormInputRequest) Validate() error {
	if err := r.ProductRef.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Field) == "" {
		return ErrMissingField
	}
	return nil
}

// FormStepRequest represents the JSON request body for the form stepper endpoint.
//
// @Description Request to press a stepper button next to a calculator field
// @Example {"product_id": "sku-oak-8mm", "fields": {"packages": "4"}, "field": "packages", "direction": "increment"}
type FormStepRequest struct {
	ProductRef
	Fields    map[string]string `json:"fields,omitempty"`
	Field     string            `json:"field" binding:"required" example:"packages"`
	Direction string            `json:"direction" binding:"required" example:"increment" enums:"increment,decrement"`
} // @name FormStepRequest

// Validate performs custom validation on the request.
func (r *FormStepRequest) Validate() error {
	if err := r.ProductRef.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Field) == "" {
		return ErrMissingField
	}
	if r.Direction != "increment" && r.Direction != "decrement" {
		return ErrInvalidDirection
	}
	return nil
}

// UpdateProductRequest represents the JSON request body for saving a product's
// measurement metadata. The product id comes from the path.
//
// @Description Measurement metadata of a catalog product
// @Example {"name": "Oak panel 8mm", "mode": "area", "units_per_package": 2.5, "price_per_unit": 119.9, "stock_on_hand": 40}
type UpdateProductRequest struct {
	Name             string  `json:"name,omitempty" example:"Oak panel 8mm"`
	Mode             string  `json:"mode" binding:"required" example:"area" enums:"standard,length,area,mosaic"`
	UnitsPerPackage  float64 `json:"units_per_package" example:"2.5"`
	PricePerUnit     float64 `json:"price_per_unit" example:"119.9"`
	StockOnHand      *int    `json:"stock_on_hand,omitempty" example:"40"`
	MinOrderQty      int     `json:"min_order_qty,omitempty" example:"1"`
	MaxOrderQty      int     `json:"max_order_qty,omitempty" example:"0"`
	PiecesPerPackage int     `json:"pieces_per_package,omitempty" example:"8"`
} // @name UpdateProductRequest

// Validate performs custom validation on the request. The mode itself is not
// rejected: unknown modes are saved as standard.
func (r *UpdateProductRequest) Validate() error {
	if model.ParseMode(r.Mode).Measured() && r.UnitsPerPackage == 0 {
		return ErrInvalidUnits
	}
	return nil
}

// ToProduct converts the request into a catalog entry for productID.
func (r *UpdateProductRequest) ToProduct(productID string) model.ProductConfiguration {
	return model.ProductConfiguration{
		ProductID:        productID,
		Name:             strings.TrimSpace(r.Name),
		Mode:             model.Mode(r.Mode),
		UnitsPerPackage:  r.UnitsPerPackage,
		PricePerUnit:     r.PricePerUnit,
		StockOnHand:      r.StockOnHand,
		MinOrderQty:      r.MinOrderQty,
		MaxOrderQty:      r.MaxOrderQty,
		PiecesPerPackage: r.PiecesPerPackage,
	}
}
