package service

import (
	"strconv"
	"strings"

	"github.com/KMO142310/el-americano-delivery/internal/currency"
	"github.com/KMO142310/el-americano-delivery/internal/domain/model"
)

// BuildOrderMessage composes the plain-text order message sent through the
// messaging handoff: greeting, one line per cart item in insertion order,
// the total, then the delivery details. Amounts use the same CLP formatting
// as the cart UI so the message matches what the customer saw. The
// destination is plain text, so nothing is HTML-escaped here.
func BuildOrderMessage(cart *model.Cart, details model.CheckoutDetails) string {
	var b strings.Builder

	b.WriteString("*Hola! Quiero realizar un pedido.*\n\n")
	b.WriteString("*--- PEDIDO ---*\n")

	var total int64
	for _, item := range cart.Items {
		subtotal := item.Subtotal()
		total += subtotal
		b.WriteString("• ")
		b.WriteString(strconv.Itoa(item.Quantity))
		b.WriteString("x ")
		b.WriteString(item.Name)
		b.WriteString(" (")
		b.WriteString(currency.FormatCLP(subtotal))
		b.WriteString(")\n")
	}

	b.WriteString("\n*TOTAL: ")
	b.WriteString(currency.FormatCLP(total))
	b.WriteString("*\n\n")

	b.WriteString("*--- ENTREGA ---*\n")
	b.WriteString("Nombre: ")
	b.WriteString(details.Name)
	b.WriteString("\n")
	if details.Phone != "" {
		b.WriteString("Tel: ")
		b.WriteString(details.Phone)
		b.WriteString("\n")
	}
	b.WriteString("Direccion: ")
	b.WriteString(details.Address)
	b.WriteString("\n")
	b.WriteString("Pago: ")
	b.WriteString(details.PaymentMethod)
	b.WriteString("\n")
	if details.Notes != "" {
		b.WriteString("Notas: ")
		b.WriteString(details.Notes)
		b.WriteString("\n")
	}

	return b.String()
}
