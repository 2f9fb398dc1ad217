// Package i18n provides internationalization support for the area/length service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates a failed admin login.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyProductNotFound indicates the catalog has no entry for a product.
	ErrKeyProductNotFound = "error.product_not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyValidationProduct indicates neither a product id nor an inline product was sent.
	ErrKeyValidationProduct = "error.validation.product"
	// ErrKeyValidationTrigger indicates an unknown engine trigger.
	ErrKeyValidationTrigger = "error.validation.trigger"
	// ErrKeyValidationField indicates an unknown form field.
	ErrKeyValidationField = "error.validation.field"
	// ErrKeyValidationDirection indicates an invalid stepper direction.
	ErrKeyValidationDirection = "error.validation.direction"
	// ErrKeyValidationUnits indicates an invalid units-per-package value.
	ErrKeyValidationUnits = "error.validation.units"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyServiceUnavailable indicates the catalog database is disabled or down.
	ErrKeyServiceUnavailable = "error.service_unavailable"
	// ErrKeyTimeout indicates the request deadline passed before a response was written.
	ErrKeyTimeout = "error.timeout"
)

// Calculator label keys.
const (
	LabelKeyAtLeast      = "label.at_least"
	LabelKeyWeHave       = "label.we_have"
	LabelKeyOf           = "label.of"
	LabelKeyInStock      = "label.in_stock"
	LabelKeyPcsInPackage = "label.pcs_in_package"
	LabelKeyPerPiece     = "label.per_piece"
	LabelKeyPerPackage   = "label.per_package"
	UnitKeyArea          = "unit.area"
	UnitKeyLength        = "unit.length"
	UnitKeyMosaic        = "unit.mosaic"
)

// Success message translation keys.
const (
	// SuccessKeyCalculated indicates a successful calculation.
	SuccessKeyCalculated = "success.calculated"
	// SuccessKeyFormEdited indicates a calculator form field was applied.
	SuccessKeyFormEdited = "success.form_edited"
	// SuccessKeyProductUpdated indicates a catalog entry was saved.
	SuccessKeyProductUpdated = "success.product_updated"
)
