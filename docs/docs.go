// Package docs holds the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/guttosm/area-length-service",
            "email": "support@example.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/calculate": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Calculator"],
                "summary": "Apply one calculator event",
                "parameters": [
                    {"type": "string", "description": "Locale for labels and messages", "name": "Accept-Language", "in": "header"},
                    {"description": "Product, state and event", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CalculateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/form/input": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Calculator"],
                "summary": "Type a value into a calculator field",
                "parameters": [
                    {"description": "Fields and the edited field", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FormInputRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/form/step": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Calculator"],
                "summary": "Press a stepper button next to a calculator field",
                "parameters": [
                    {"description": "Fields, field and direction", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FormStepRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/products": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "List catalog products",
                "parameters": [
                    {"type": "integer", "default": 50, "description": "Maximum number of products (1-200)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/products/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Get a product's measurement configuration",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Save a product's measurement metadata",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"description": "Measurement metadata", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateProductRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/products/{id}/calculator": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Page-load calculator state, margin menu and labels",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Locale for labels", "name": "Accept-Language", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/products/{id}/price": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Per-unit price block and availability label",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Locale for labels", "name": "Accept-Language", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/activity": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Activity"],
                "summary": "Query the activity log",
                "parameters": [
                    {"type": "string", "description": "Request ID", "name": "request_id", "in": "query"},
                    {"type": "string", "description": "Log level", "name": "level", "in": "query"},
                    {"type": "string", "description": "Product ID", "name": "product_id", "in": "query"},
                    {"type": "string", "description": "Action type", "name": "action_type", "in": "query"},
                    {"type": "string", "description": "RFC 3339 lower bound on the timestamp", "name": "since", "in": "query"},
                    {"type": "string", "description": "RFC 3339 upper bound on the timestamp", "name": "until", "in": "query"},
                    {"type": "integer", "description": "Maximum number of entries (default 50, max 200)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Entries to skip", "name": "skip", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Catalog administrator login",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness probe",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        }
    },
    "definitions": {
        "CalculateRequest": {
            "type": "object",
            "properties": {
                "product_id": {"type": "string", "example": "sku-oak-8mm"},
                "product": {"$ref": "#/definitions/ProductConfiguration"},
                "state": {"$ref": "#/definitions/CalculationState"},
                "event": {"$ref": "#/definitions/CalculationEvent"}
            }
        },
        "CalculationEvent": {
            "type": "object",
            "required": ["trigger"],
            "properties": {
                "trigger": {"type": "string", "enum": ["dimensions", "measurement", "packages", "marginChanged", "mosaicQty", "mosaicMeasurement"], "example": "dimensions"},
                "value": {"type": "number", "example": 0},
                "length": {"type": "number", "example": 5},
                "width": {"type": "number", "example": 2}
            }
        },
        "CalculationState": {
            "type": "object",
            "properties": {
                "length": {"type": "number", "example": 5},
                "width": {"type": "number", "example": 2},
                "margin_percent": {"type": "integer", "example": 10},
                "measurement": {"type": "number", "example": 11},
                "packages": {"type": "integer", "example": 5},
                "purchasable_qty": {"type": "integer", "example": 5},
                "mosaic_qty": {"type": "number", "example": 0}
            }
        },
        "FormInputRequest": {
            "type": "object",
            "required": ["field"],
            "properties": {
                "product_id": {"type": "string", "example": "sku-oak-8mm"},
                "product": {"$ref": "#/definitions/ProductConfiguration"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}},
                "field": {"type": "string", "example": "length"},
                "value": {"type": "string", "example": "5"}
            }
        },
        "FormStepRequest": {
            "type": "object",
            "required": ["field", "direction"],
            "properties": {
                "product_id": {"type": "string", "example": "sku-oak-8mm"},
                "product": {"$ref": "#/definitions/ProductConfiguration"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}},
                "field": {"type": "string", "example": "packages"},
                "direction": {"type": "string", "enum": ["increment", "decrement"], "example": "increment"}
            }
        },
        "ProductConfiguration": {
            "type": "object",
            "properties": {
                "product_id": {"type": "string", "example": "sku-oak-8mm"},
                "name": {"type": "string", "example": "Oak panel 8mm"},
                "mode": {"type": "string", "enum": ["standard", "length", "area", "mosaic"], "example": "area"},
                "units_per_package": {"type": "number", "example": 2.5},
                "price_per_unit": {"type": "number", "example": 119.9},
                "stock_on_hand": {"type": "integer", "example": 40},
                "min_order_qty": {"type": "integer", "example": 1},
                "max_order_qty": {"type": "integer", "example": 0},
                "pieces_per_package": {"type": "integer", "example": 8}
            }
        },
        "UpdateProductRequest": {
            "type": "object",
            "required": ["mode"],
            "properties": {
                "name": {"type": "string", "example": "Oak panel 8mm"},
                "mode": {"type": "string", "enum": ["standard", "length", "area", "mosaic"], "example": "area"},
                "units_per_package": {"type": "number", "example": 2.5},
                "price_per_unit": {"type": "number", "example": 119.9},
                "stock_on_hand": {"type": "integer", "example": 40},
                "min_order_qty": {"type": "integer", "example": 1},
                "max_order_qty": {"type": "integer", "example": 0},
                "pieces_per_package": {"type": "integer", "example": 8}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "admin@example.com"},
                "password": {"type": "string", "example": "password123"}
            }
        },
        "SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "request_id": {"type": "string", "example": "550e8400-e29b-41d4-a716-446655440000"},
                "timestamp": {"type": "string", "example": "2025-01-28T10:00:00Z"}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "invalid_request"},
                "message": {"type": "string", "example": "product_id: product_id or product is required"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                "request_id": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "description": "API key for authentication. Required if authentication is enabled.",
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        },
        "BearerAuth": {
            "description": "Catalog administrator JWT: \"Bearer <token>\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Area & Length Calculator API",
	Description:      "Converts room dimensions and target lengths into package counts, reconciles them against stock and renders the running total.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
