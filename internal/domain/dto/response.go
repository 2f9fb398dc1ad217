package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/area-length-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates the catalog storage is disabled or its circuit is open.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the endpoint payload (CalculationResult for the calculate endpoint)
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"product_id: product_id or product is required"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// NewSuccess wraps data in the response envelope.
func NewSuccess(data interface{}, requestID string) SuccessResponse {
	return SuccessResponse{
		Data:      data,
		RequestID: requestID,
		Timestamp: time.Now(),
	}
}

// FormResponse is returned by the form input and stepper endpoints. Fields
// is the complete field set to render, including the edited one.
//
// @Description Calculator form after one edit
type FormResponse struct {
	Fields       map[string]string      `json:"fields"`
	State        model.CalculationState `json:"state"`
	Summary      model.Summary          `json:"summary"`
	Submission   model.Submission       `json:"submission"`
	Inert        bool                   `json:"inert"`
	ExceedsStock bool                   `json:"exceeds_stock"`
} // @name FormResponse

// NewFormResponse builds a FormResponse from the rendered fields and the last result.
func NewFormResponse(fields map[string]string, result model.CalculationResult) FormResponse {
	return FormResponse{
		Fields:       fields,
		State:        result.State,
		Summary:      result.Summary,
		Submission:   result.Submission,
		Inert:        result.Inert,
		ExceedsStock: result.ExceedsStock,
	}
}

// MarginMenu lists the safety margins offered next to the dimension inputs.
type MarginMenu struct {
	Options []int `json:"options" example:"0,5,10"`
	Default int   `json:"default" example:"10"`
} // @name MarginMenu

// CalculatorInitResponse carries everything a product page needs to render
// the calculator before the first edit.
//
// @Description Calculator bootstrap data for a product page
type CalculatorInitResponse struct {
	Product model.ProductConfiguration `json:"product"`
	Result  model.CalculationResult    `json:"result"`
	Fields  map[string]string          `json:"fields"`
	Margins MarginMenu                 `json:"margins"`
	// Unit is the localized measurement unit label.
	Unit   string            `json:"unit" example:"m²"`
	Labels map[string]string `json:"labels"`
} // @name CalculatorInitResponse

// ProductListResponse lists catalog entries.
type ProductListResponse struct {
	Products []model.ProductConfiguration `json:"products"`
	Count    int                          `json:"count" example:"1"`
} // @name ProductListResponse

// ActivityListResponse is one page of the activity log.
type ActivityListResponse struct {
	Entries []model.LogEntry `json:"entries"`
	// Count is the number of entries on this page.
	Count int `json:"count" example:"20"`
	// Total is the number of entries matching the filter across all pages.
	Total int64 `json:"total" example:"135"`
} // @name ActivityListResponse
