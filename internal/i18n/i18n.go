// Package i18n provides internationalization support for the pre-order service.
// It handles translation of user-facing status and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (Spanish, matching the
	// storefront the widget is embedded in).
	DefaultLocale = "es"
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

	// Parse Accept-Language header (e.g., "es-CL,es;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "es" from "es-CL")
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
		"es": {
			// Error messages
			"error.invalid_request":      "Solicitud inválida",
			"error.invalid_request_body": "Cuerpo de la solicitud inválido",
			"error.internal_error":       "Ocurrió un error inesperado",
			"error.not_found":            "No encontrado",
			"error.item_not_found":       "El producto no está en el carrito",
			"error.rate_limit_exceeded":  "Demasiadas solicitudes, intenta más tarde",
			"error.conflict":             "Conflicto",
			"error.timeout":              "Tiempo de espera agotado",
			"error.checkout_cooldown":    "Por favor, espera unos segundos...",
			"error.cart_empty":           "Tu carrito está vacío",
			"error.checkout_in_progress": "Tu pedido ya se está procesando",

			// Validation messages (first failing rule wins)
			"error.validation.name_empty": "Ingresa tu nombre",
			"error.validation.name_chars": "El nombre solo puede contener letras",
			"error.validation.name_short": "El nombre es muy corto",
			"error.validation.phone":      "Celular inválido (Ej: 9 1234 5678)",
			"error.validation.address":    "Ingresa una dirección válida",

			// Success messages
			"success.item_added":      "Producto agregado",
			"success.order_submitted": "¡Pedido enviado!",
		},
		"en": {
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.not_found":            "Not found",
			"error.item_not_found":       "The product is not in the cart",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.conflict":             "Conflict",
			"error.timeout":              "Request timeout",
			"error.checkout_cooldown":    "Please wait a few seconds...",
			"error.cart_empty":           "Your cart is empty",
			"error.checkout_in_progress": "Your order is already being processed",

			// Validation messages (first failing rule wins)
			"error.validation.name_empty": "Enter your name",
			"error.validation.name_chars": "The name may only contain letters",
			"error.validation.name_short": "The name is too short",
			"error.validation.phone":      "Invalid mobile number (e.g. 9 1234 5678)",
			"error.validation.address":    "Enter a valid address",

			// Success messages
			"success.item_added":      "Item added",
			"success.order_submitted": "Order sent!",
		},
	}
}
