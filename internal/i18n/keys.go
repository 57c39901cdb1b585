// Package i18n provides internationalization support for the pre-order service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyItemNotFound indicates a cart line item was not found.
	ErrKeyItemNotFound = "error.item_not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyCheckoutCooldown indicates a checkout attempt within the cooldown window.
	ErrKeyCheckoutCooldown = "error.checkout_cooldown"
	// ErrKeyCartEmpty indicates a checkout attempt with an empty cart.
	ErrKeyCartEmpty = "error.cart_empty"
	// ErrKeyCheckoutInProgress indicates a checkout submission while another is in flight.
	ErrKeyCheckoutInProgress = "error.checkout_in_progress"
	// ErrKeyNameEmpty indicates a missing customer name.
	ErrKeyNameEmpty = "error.validation.name_empty"
	// ErrKeyNameInvalidChars indicates a name with digits or symbols.
	ErrKeyNameInvalidChars = "error.validation.name_chars"
	// ErrKeyNameTooShort indicates a name below the minimum length.
	ErrKeyNameTooShort = "error.validation.name_short"
	// ErrKeyPhoneInvalid indicates a phone that does not match the expected format.
	ErrKeyPhoneInvalid = "error.validation.phone"
	// ErrKeyAddressTooShort indicates an address below the minimum length.
	ErrKeyAddressTooShort = "error.validation.address"
)

// Success message translation keys.
const (
	// SuccessKeyItemAdded indicates an item was added to the cart.
	SuccessKeyItemAdded = "success.item_added"
	// SuccessKeyOrderSubmitted indicates the order was handed off.
	SuccessKeyOrderSubmitted = "success.order_submitted"
)
