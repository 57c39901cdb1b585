// Package service implements the business logic of the pre-order flow: the
// session cart, checkout validation, order message building, and the
// checkout orchestration that hands the order off to the messaging link.
package service

import (
	"regexp"
	"strings"

	"github.com/KMO142310/el-americano-delivery/internal/i18n"
)

// ValidationReason identifies which rule a checkout submission failed.
type ValidationReason string

const (
	// ReasonNameEmpty means the name was empty after trimming.
	ReasonNameEmpty ValidationReason = "name_empty"
	// ReasonNameInvalidChars means the name contains digits or symbols.
	ReasonNameInvalidChars ValidationReason = "name_invalid_chars"
	// ReasonNameTooShort means the trimmed name is shorter than two characters.
	ReasonNameTooShort ValidationReason = "name_too_short"
	// ReasonPhoneInvalid means a provided phone does not match the Chilean mobile format.
	ReasonPhoneInvalid ValidationReason = "phone_invalid"
	// ReasonAddressTooShort means the trimmed address is shorter than five characters.
	ReasonAddressTooShort ValidationReason = "address_too_short"
)

// MessageKey returns the i18n key for the user-facing message of this reason.
func (r ValidationReason) MessageKey() string {
	switch r {
	case ReasonNameEmpty:
		return i18n.ErrKeyNameEmpty
	case ReasonNameInvalidChars:
		return i18n.ErrKeyNameInvalidChars
	case ReasonNameTooShort:
		return i18n.ErrKeyNameTooShort
	case ReasonPhoneInvalid:
		return i18n.ErrKeyPhoneInvalid
	case ReasonAddressTooShort:
		return i18n.ErrKeyAddressTooShort
	}
	return i18n.ErrKeyInvalidRequest
}

// Field returns the form field that should receive focus for this reason.
func (r ValidationReason) Field() string {
	switch r {
	case ReasonNameEmpty, ReasonNameInvalidChars, ReasonNameTooShort:
		return "name"
	case ReasonPhoneInvalid:
		return "phone"
	case ReasonAddressTooShort:
		return "address"
	}
	return ""
}

var (
	// Letters, spaces, dots, apostrophes, hyphens, Spanish accents.
	// Allows "Juan Pérez" and "María T. O'Connor"; blocks "Juan123" and "@Joker".
	nameRe = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s.'-]+$`)

	// Optional +56/56 country prefix, then 9 and exactly 8 more digits.
	phoneRe = regexp.MustCompile(`^(\+?56)?9[0-9]{8}$`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ValidationResult is the outcome of validating checkout details.
type ValidationResult struct {
	Valid  bool
	Reason ValidationReason
}

// ValidateCheckout checks customer-supplied delivery details against the
// format rules. Rules run in order and the first failure wins, so the most
// fundamental problem surfaces first. The function is pure; the caller
// decides how to present the reason.
func ValidateCheckout(name, phone, address string) ValidationResult {
	name = strings.TrimSpace(name)

	if name == "" {
		return ValidationResult{Reason: ReasonNameEmpty}
	}
	if !nameRe.MatchString(name) {
		return ValidationResult{Reason: ReasonNameInvalidChars}
	}
	if len([]rune(name)) < 2 {
		return ValidationResult{Reason: ReasonNameTooShort}
	}

	// Phone is optional; a blank value is valid.
	if cleaned := whitespaceRe.ReplaceAllString(phone, ""); cleaned != "" {
		if !phoneRe.MatchString(cleaned) {
			return ValidationResult{Reason: ReasonPhoneInvalid}
		}
	}

	if len([]rune(strings.TrimSpace(address))) < 5 {
		return ValidationResult{Reason: ReasonAddressTooShort}
	}

	return ValidationResult{Valid: true}
}
