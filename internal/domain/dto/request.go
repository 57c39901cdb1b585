// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// AddItemRequest represents the JSON request body for adding a product to the cart.
//
// Name is required and must be non-empty after trimming.
// UnitPrice is the product price in Chilean pesos and must not be negative.
// Validation is performed using gin's binding tags plus Validate.
type AddItemRequest struct {
	// Name is the product name as shown on the menu.
	Name string `json:"name" binding:"required"`
	// UnitPrice is the price per unit in CLP. Must be zero or greater.
	UnitPrice int64 `json:"unit_price" binding:"gte=0"`
}

// ChangeQuantityRequest represents the JSON request body for adjusting
// an item's quantity. Delta may be negative; a resulting quantity of
// zero or less removes the item.
type ChangeQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// CheckoutRequest represents the JSON request body for submitting an order.
//
// Name, Phone and Address are validated by the checkout service against
// the delivery rules. PaymentMethod and Notes are optional.
type CheckoutRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidItemName is returned when the item name is missing.
	ErrInvalidItemName = &ValidationError{
		Field:   "name",
		Message: "must be a non-empty string",
	}
	// ErrInvalidUnitPrice is returned when the unit price is negative.
	ErrInvalidUnitPrice = &ValidationError{
		Field:   "unit_price",
		Message: "must be zero or greater",
	}
	// ErrInvalidDelta is returned when the quantity delta is zero.
	ErrInvalidDelta = &ValidationError{
		Field:   "delta",
		Message: "must be a non-zero integer",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *AddItemRequest) Validate() error {
	if r.Name == "" {
		return ErrInvalidItemName
	}
	if r.UnitPrice < 0 {
		return ErrInvalidUnitPrice
	}
	return nil
}

// Validate checks that the delta is usable.
func (r *ChangeQuantityRequest) Validate() error {
	if r.Delta == 0 {
		return ErrInvalidDelta
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
