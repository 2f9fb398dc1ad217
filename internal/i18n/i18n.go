// Package i18n provides internationalization support for the area/length service.
// It translates error messages and the labels rendered by the calculator summary.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale or the key is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// Supports reports whether the translator carries a message table for locale.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	return ParseLocale(c.GetHeader(AcceptLanguageHeader))
}

// ParseLocale reduces an Accept-Language value (e.g. "pl-PL,pl;q=0.9") to a
// supported base language, or DefaultLocale.
func ParseLocale(acceptLang string) string {
	if acceptLang == "" {
		return DefaultLocale
	}

	parts := strings.Split(acceptLang, ",")
	lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
	if idx := strings.Index(lang, "-"); idx > 0 {
		lang = lang[:idx]
	}
	lang = strings.ToLower(lang)
	if GetTranslator().Supports(lang) {
		return lang
	}

	return DefaultLocale
}

func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":       "Invalid request",
			"error.invalid_request_body":  "Invalid request body",
			"error.internal_error":        "An unexpected error occurred",
			"error.unauthorized":          "Unauthorized",
			"error.invalid_credentials":   "Invalid email or password",
			"error.api_key_required":      "API key is required",
			"error.invalid_api_key":       "Invalid API key",
			"error.forbidden":             "Forbidden",
			"error.not_found":             "Not found",
			"error.product_not_found":     "Product not found",
			"error.rate_limit_exceeded":   "Too many requests, please try again later",
			"error.conflict":              "Conflict",
			"error.validation.product":    "either product_id or product is required",
			"error.validation.trigger":    "trigger: unknown field",
			"error.validation.field":      "field: unknown calculator field",
			"error.validation.direction":  "direction: must be increment or decrement",
			"error.validation.units":      "units_per_package: must be a non-negative number",
			"error.invalid_token":         "Invalid or expired token",
			"error.token_required":        "Authentication token is required",
			"error.service_unavailable":   "Catalog storage is not available",
			"error.timeout":               "Request timed out",

			// Calculator labels
			"label.at_least":       "at least:",
			"label.we_have":        "we have",
			"label.of":             "of",
			"label.in_stock":       "in stock",
			"label.pcs_in_package": "pcs. in package",
			"label.per_piece":      "piece",
			"label.per_package":    "package",
			"unit.area":            "m²",
			"unit.length":          "m",
			"unit.mosaic":          "m²",

			// Success messages
			"success.calculated":      "Calculation completed successfully",
			"success.form_edited":     "Calculator form edited",
			"success.product_updated": "Product updated successfully",
		},
		"pl": {
			// Error messages
			"error.invalid_request":       "Nieprawidłowe żądanie",
			"error.invalid_request_body":  "Nieprawidłowa treść żądania",
			"error.internal_error":        "Wystąpił nieoczekiwany błąd",
			"error.unauthorized":          "Brak autoryzacji",
			"error.invalid_credentials":   "Nieprawidłowy e-mail lub hasło",
			"error.api_key_required":      "Klucz API jest wymagany",
			"error.invalid_api_key":       "Nieprawidłowy klucz API",
			"error.forbidden":             "Brak dostępu",
			"error.not_found":             "Nie znaleziono",
			"error.product_not_found":     "Nie znaleziono produktu",
			"error.rate_limit_exceeded":   "Zbyt wiele żądań, spróbuj ponownie później",
			"error.conflict":              "Konflikt",
			"error.validation.product":    "wymagane jest product_id lub product",
			"error.validation.trigger":    "trigger: nieznane pole",
			"error.validation.field":      "field: nieznane pole kalkulatora",
			"error.validation.direction":  "direction: dozwolone wartości to increment lub decrement",
			"error.validation.units":      "units_per_package: musi być liczbą nieujemną",
			"error.invalid_token":         "Nieprawidłowy lub wygasły token",
			"error.token_required":        "Token uwierzytelniający jest wymagany",
			"error.service_unavailable":   "Magazyn katalogu jest niedostępny",
			"error.timeout":               "Przekroczono czas żądania",

			// Calculator labels
			"label.at_least":       "co najmniej:",
			"label.we_have":        "mamy",
			"label.of":             "z",
			"label.in_stock":       "na stanie",
			"label.pcs_in_package": "szt. w opakowaniu",
			"label.per_piece":      "szt.",
			"label.per_package":    "opak.",
			"unit.area":            "m²",
			"unit.length":          "mb",
			"unit.mosaic":          "m²",

			// Success messages
			"success.calculated":      "Obliczenia zakończone pomyślnie",
			"success.form_edited":     "Formularz kalkulatora zaktualizowany",
			"success.product_updated": "Produkt został zaktualizowany",
		},
		"pt": {
			// Error messages
			"error.invalid_request":       "Requisição inválida",
			"error.invalid_request_body":  "Corpo da requisição inválido",
			"error.internal_error":        "Ocorreu um erro inesperado",
			"error.unauthorized":          "Não autorizado",
			"error.invalid_credentials":   "E-mail ou senha inválidos",
			"error.api_key_required":      "Chave de API é obrigatória",
			"error.invalid_api_key":       "Chave de API inválida",
			"error.forbidden":             "Proibido",
			"error.not_found":             "Não encontrado",
			"error.product_not_found":     "Produto não encontrado",
			"error.rate_limit_exceeded":   "Muitas requisições, tente novamente mais tarde",
			"error.conflict":              "Conflito",
			"error.validation.product":    "product_id ou product é obrigatório",
			"error.validation.trigger":    "trigger: campo desconhecido",
			"error.validation.field":      "field: campo da calculadora desconhecido",
			"error.validation.direction":  "direction: deve ser increment ou decrement",
			"error.validation.units":      "units_per_package: deve ser um número não negativo",
			"error.invalid_token":         "Token inválido ou expirado",
			"error.token_required":        "Token de autenticação é obrigatório",
			"error.service_unavailable":   "Armazenamento do catálogo indisponível",
			"error.timeout":               "Tempo de requisição esgotado",

			// Calculator labels
			"label.at_least":       "pelo menos:",
			"label.we_have":        "temos",
			"label.of":             "de",
			"label.in_stock":       "em estoque",
			"label.pcs_in_package": "pçs. por embalagem",
			"label.per_piece":      "peça",
			"label.per_package":    "embalagem",
			"unit.area":            "m²",
			"unit.length":          "m",
			"unit.mosaic":          "m²",

			// Success messages
			"success.calculated":      "Cálculo concluído com sucesso",
			"success.form_edited":     "Formulário da calculadora atualizado",
			"success.product_updated": "Produto atualizado com sucesso",
		},
	}
}
