// Package currency provides formatting of amounts as Chilean peso text and
// escaping of untrusted text for HTML-bearing surfaces. Both are pure and
// shared by every surface that renders prices, so the order message always
// matches what the customer saw in the cart.
package currency

import (
	"html"
	"strconv"
	"strings"
)

// FormatCLP formats an integer peso amount the way the es-CL locale renders
// CLP: no decimals, "." as the thousands separator, "$" prefix.
// FormatCLP(1234) returns "$1.234".
func FormatCLP(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3 + 2)
	if negative {
		b.WriteByte('-')
	}
	b.WriteByte('$')

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// EscapeText escapes untrusted text (product names, customer input) for safe
// inclusion in HTML output. The order message itself is plain text and must
// not be escaped.
func EscapeText(s string) string {
	return html.EscapeString(s)
}
