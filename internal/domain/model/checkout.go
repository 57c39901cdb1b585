package model

// CheckoutDetails carries the delivery information read from the checkout
// form at submit time. It is transient and never persisted.
type CheckoutDetails struct {
	Name          string
	Phone         string
	Address       string
	PaymentMethod string
	Notes         string
}

// CheckoutStep is the linear progress indicator shown during checkout.
type CheckoutStep int

const (
	// StepBrowsing is the initial step: the customer is still adding items.
	StepBrowsing CheckoutStep = 1
	// StepDetails means the customer has started filling delivery details.
	StepDetails CheckoutStep = 2
	// StepConfirming means a submission was accepted and is being handed off.
	StepConfirming CheckoutStep = 3
)

// HandoffResult is returned by a successful checkout. URL is the deep link
// the client must open; the message is the exact text encoded into it.
// Producing this result only means the handoff was attempted: the messaging
// application is opaque and delivery is never confirmed.
type HandoffResult struct {
	URL     string `json:"whatsapp_url"`
	Message string `json:"message"`
}
