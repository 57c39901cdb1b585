package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTranslate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{
			name:     "spanish cart empty",
			key:      ErrKeyCartEmpty,
			locale:   "es",
			expected: "Tu carrito está vacío",
		},
		{
			name:     "english cart empty",
			key:      ErrKeyCartEmpty,
			locale:   "en",
			expected: "Your cart is empty",
		},
		{
			name:     "empty locale falls back to spanish",
			key:      ErrKeyCheckoutCooldown,
			locale:   "",
			expected: "Por favor, espera unos segundos...",
		},
		{
			name:     "unknown locale falls back to spanish",
			key:      ErrKeyNameEmpty,
			locale:   "fr",
			expected: "Ingresa tu nombre",
		},
		{
			name:     "unknown key returns the key itself",
			key:      "error.does_not_exist",
			locale:   "es",
			expected: "error.does_not_exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestValidationMessages(t *testing.T) {
	// The user-facing copy the storefront depends on.
	translator := GetTranslator()

	assert.Equal(t, "Ingresa tu nombre", translator.Translate(ErrKeyNameEmpty, "es"))
	assert.Equal(t, "El nombre solo puede contener letras", translator.Translate(ErrKeyNameInvalidChars, "es"))
	assert.Equal(t, "El nombre es muy corto", translator.Translate(ErrKeyNameTooShort, "es"))
	assert.Equal(t, "Celular inválido (Ej: 9 1234 5678)", translator.Translate(ErrKeyPhoneInvalid, "es"))
	assert.Equal(t, "Ingresa una dirección válida", translator.Translate(ErrKeyAddressTooShort, "es"))
}

func TestAllKeysPresentInBothLocales(t *testing.T) {
	messages := getDefaultMessages()
	es := messages["es"]
	en := messages["en"]

	for key := range es {
		_, ok := en[key]
		assert.True(t, ok, "missing english translation for %s", key)
	}
	for key := range en {
		_, ok := es[key]
		assert.True(t, ok, "missing spanish translation for %s", key)
	}
}

func TestGetLocale(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "no header", header: "", expected: "es"},
		{name: "chilean spanish", header: "es-CL,es;q=0.9", expected: "es"},
		{name: "english", header: "en-US,en;q=0.9", expected: "en"},
		{name: "unsupported language", header: "fr-FR,fr;q=0.9", expected: "es"},
		{name: "uppercase language", header: "EN", expected: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.header)
			}

			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}
