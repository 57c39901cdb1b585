package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrItemNotFound is returned when a quantity change addresses an item
	// that is not in the cart.
	ErrItemNotFound = errors.New("item not found in cart")

	// ErrCartEmpty rejects a checkout attempt on an empty cart.
	ErrCartEmpty = errors.New("cart is empty")

	// ErrCheckoutInProgress rejects a checkout attempt while a previous
	// submission is still being handed off.
	ErrCheckoutInProgress = errors.New("checkout already in progress")

	// ErrOrchestratorClosed is returned after the orchestrator was disposed.
	ErrOrchestratorClosed = errors.New("checkout orchestrator is closed")
)

// CooldownError rejects a checkout attempt inside the cooldown window.
// It is distinct from validation failure: the submission was never examined.
type CooldownError struct {
	RetryAfter time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("checkout rate limited, retry in %s", e.RetryAfter)
}

// ValidationFailure carries the first validation rule a submission failed
// along with the form field that should receive focus.
type ValidationFailure struct {
	Reason ValidationReason
}

func (e *ValidationFailure) Error() string {
	return "invalid checkout details: " + string(e.Reason)
}
