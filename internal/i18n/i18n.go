// Package i18n provides internationalization support for the storefront service.
// It handles translation of user-facing messages and error messages.
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
	// defaultTranslator is the singleton translator instance.
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
// Falls back to DefaultLocale if the locale is not found.
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
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":       "Invalid request",
			"error.invalid_request_body":  "Invalid request body",
			"error.internal_error":        "An unexpected error occurred",
			"error.not_found":             "Not found",
			"error.product_not_found":     "Product not found",
			"error.catalog_unavailable":   "Product catalog is temporarily unavailable",
			"error.rate_limit_exceeded":   "Too many requests, please try again later",
			"error.conflict":              "Conflict",
			"error.validation.quantity":   "quantity: must not be negative",
			"error.validation.product_id": "product_id: must be a positive integer",
			"error.page_out_of_range":     "page: out of range for the current results",
			"error.invalid_dimension":     "dimension: unknown filter dimension",
			"error.timeout":               "Request timed out",
		},
		"pt": {
			// Error messages
			"error.invalid_request":       "Requisição inválida",
			"error.invalid_request_body":  "Corpo da requisição inválido",
			"error.internal_error":        "Ocorreu um erro inesperado",
			"error.not_found":             "Não encontrado",
			"error.product_not_found":     "Produto não encontrado",
			"error.catalog_unavailable":   "Catálogo de produtos temporariamente indisponível",
			"error.rate_limit_exceeded":   "Muitas requisições, tente novamente mais tarde",
			"error.conflict":              "Conflito",
			"error.validation.quantity":   "quantity: não pode ser negativa",
			"error.validation.product_id": "product_id: deve ser um inteiro positivo",
			"error.page_out_of_range":     "page: fora do intervalo dos resultados atuais",
			"error.invalid_dimension":     "dimension: dimensão de filtro desconhecida",
			"error.timeout":               "Tempo de requisição esgotado",
		},
		"nl": {
			// Error messages
			"error.invalid_request":       "Ongeldig verzoek",
			"error.invalid_request_body":  "Ongeldige aanvraag body",
			"error.internal_error":        "Er is een onverwachte fout opgetreden",
			"error.not_found":             "Niet gevonden",
			"error.product_not_found":     "Product niet gevonden",
			"error.catalog_unavailable":   "Productcatalogus is tijdelijk niet beschikbaar",
			"error.rate_limit_exceeded":   "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":              "Conflict",
			"error.validation.quantity":   "quantity: mag niet negatief zijn",
			"error.validation.product_id": "product_id: moet een positief geheel getal zijn",
			"error.page_out_of_range":     "page: buiten het bereik van de huidige resultaten",
			"error.invalid_dimension":     "dimension: onbekende filterdimensie",
			"error.timeout":               "Verzoek time-out",
		},
	}
}
