package dto

import (
	"net/http"
	"time"

	"github.com/KMO142310/el-americano-delivery/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeValidation indicates a checkout field failed validation.
	ErrCodeValidation = "validation_failed"
)

// SuccessResponse wraps successful API responses with metadata.
type SuccessResponse struct {
	// Data contains the actual response data.
	Data interface{} `json:"data"`
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id,omitempty"`
	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse represents a standardized error response for the API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	// Details contains additional error details, such as the failing field.
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	TraceID   string            `json:"trace_id,omitempty"`
}

// CartItemResponse is the wire representation of a single cart line.
type CartItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
	// Formatted is the display rendering of the subtotal, so clients
	// render lines without reimplementing CLP formatting.
	Formatted string `json:"formatted"`
}

// CartResponse is the wire representation of the full cart state.
type CartResponse struct {
	Items          []CartItemResponse `json:"items"`
	TotalQuantity  int                `json:"total_quantity"`
	TotalPrice     int64              `json:"total_price"`
	FormattedTotal string             `json:"formatted_total"`
}

// CheckoutResponse carries the WhatsApp handoff produced by a
// successful order submission.
type CheckoutResponse struct {
	WhatsAppURL string `json:"whatsapp_url"`
	Message     string `json:"message"`
	Step        int    `json:"step"`
}

// NewCartResponse builds a CartResponse from the domain cart and a
// formatter for the line subtotals and the total (CLP display
// formatting lives outside dto).
func NewCartResponse(cart *model.Cart, format func(int64) string) CartResponse {
	totals := cart.Totals()
	items := make([]CartItemResponse, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, CartItemResponse{
			ID:        it.ID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal(),
			Formatted: format(it.Subtotal()),
		})
	}
	return CartResponse{
		Items:          items,
		TotalQuantity:  totals.TotalQuantity,
		TotalPrice:     totals.TotalPrice,
		FormattedTotal: format(totals.TotalPrice),
	}
}

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails attaches field details to the error response.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}
