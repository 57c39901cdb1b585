package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KMO142310/el-americano-delivery/internal/currency"
	"github.com/KMO142310/el-americano-delivery/internal/domain/dto"
	"github.com/KMO142310/el-americano-delivery/internal/domain/model"
	"github.com/KMO142310/el-americano-delivery/internal/i18n"
	"github.com/KMO142310/el-americano-delivery/internal/metrics"
	"github.com/KMO142310/el-americano-delivery/internal/middleware"
	"github.com/KMO142310/el-americano-delivery/internal/service"
)

// Handler provides HTTP handlers for the cart and checkout routes.
type Handler struct {
	carts    service.CartService
	checkout *service.CheckoutOrchestrator
}

// NewHandler creates a new Handler instance.
func NewHandler(carts service.CartService, checkout *service.CheckoutOrchestrator) *Handler {
	return &Handler{
		carts:    carts,
		checkout: checkout,
	}
}

// cartSnapshot builds the wire representation of the session's cart,
// including its current checkout step.
func (h *Handler) cartSnapshot(cart *model.Cart, sessionID string) gin.H {
	resp := dto.NewCartResponse(cart, currency.FormatCLP)
	return gin.H{
		"cart": resp,
		"step": int(h.checkout.Step(sessionID)),
	}
}

// GetCart handles GET /api/cart requests.
func (h *Handler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := middleware.GetSessionID(c)

	cart, _ := h.carts.Get(c.Request.Context(), sessionID)
	builder.SuccessOK(h.cartSnapshot(cart, sessionID))
}

// AddItem handles POST /api/cart/items requests.
//
// Malformed JSON is a 400; a well-formed item that fails the domain
// checks is skipped and the unchanged cart returned, matching the
// permissive add-to-cart behavior of the storefront.
func (h *Handler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := middleware.GetSessionID(c)

	req, err := BuildRequestAndValidate[dto.AddItemRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	cart, _ := h.carts.AddItem(c.Request.Context(), sessionID, req.Name, req.UnitPrice)

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "cart_add", "Item added to cart", map[string]interface{}{
				"name":       req.Name,
				"unit_price": req.UnitPrice,
			})
		}
	}

	builder.SuccessOK(h.cartSnapshot(cart, sessionID))
}

// ChangeQuantity handles PATCH /api/cart/items/:id requests.
func (h *Handler) ChangeQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := middleware.GetSessionID(c)
	itemID := c.Param("id")

	req, err := BuildRequestAndValidate[dto.ChangeQuantityRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	cart, _, err := h.carts.ChangeQuantity(c.Request.Context(), sessionID, itemID, req.Delta)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyItemNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(h.cartSnapshot(cart, sessionID))
}

// ClearCart handles DELETE /api/cart requests.
func (h *Handler) ClearCart(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := middleware.GetSessionID(c)

	cart, _ := h.carts.Clear(c.Request.Context(), sessionID)
	builder.SuccessOK(h.cartSnapshot(cart, sessionID))
}

// Checkout handles POST /api/checkout requests.
//
// A successful submission returns the WhatsApp handoff URL together with
// the composed order message. Rejections map onto distinct statuses so
// the storefront can react: 400 for field validation (with the failing
// field in details), 409 while a previous handoff is still settling or
// when the cart is empty, 429 inside the cooldown window.
func (h *Handler) Checkout(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := middleware.GetSessionID(c)

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	details := model.CheckoutDetails{
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}

	start := time.Now()
	handoff, err := h.checkout.Submit(c.Request.Context(), sessionID, details)
	if err != nil {
		h.checkoutError(c, builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "checkout", "Order handed off to WhatsApp", map[string]interface{}{
				"payment_method": details.PaymentMethod,
			})
		}
	}

	metrics.RecordCheckoutDuration(time.Since(start))

	builder.SuccessOK(dto.CheckoutResponse{
		WhatsAppURL: handoff.URL,
		Message:     handoff.Message,
		Step:        int(h.checkout.Step(sessionID)),
	})
}

// checkoutError translates checkout rejections into HTTP responses.
func (h *Handler) checkoutError(c *gin.Context, builder *ResponseBuilder, err error) {
	var validation *service.ValidationFailure
	if errors.As(err, &validation) {
		builder.ErrorWithDetails(http.StatusBadRequest, validation.Reason.MessageKey(), map[string]string{
			"field": validation.Reason.Field(),
		}, err)
		return
	}

	var cooldown *service.CooldownError
	if errors.As(err, &cooldown) {
		seconds := int(cooldown.RetryAfter.Seconds()) + 1
		c.Header("Retry-After", strconv.Itoa(seconds))
		builder.Error(http.StatusTooManyRequests, i18n.ErrKeyCheckoutCooldown, err)
		return
	}

	switch {
	case errors.Is(err, service.ErrCartEmpty):
		builder.Error(http.StatusConflict, i18n.ErrKeyCartEmpty, err)
	case errors.Is(err, service.ErrCheckoutInProgress):
		builder.Error(http.StatusConflict, i18n.ErrKeyCheckoutInProgress, err)
	case errors.Is(err, service.ErrOrchestratorClosed):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
