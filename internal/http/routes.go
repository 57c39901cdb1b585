package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// CartRoutes handles cart and checkout route registration.
type CartRoutes struct {
	handler *Handler
}

// NewCartRoutes creates a new CartRoutes instance.
func NewCartRoutes(handler *Handler) *CartRoutes {
	return &CartRoutes{handler: handler}
}

// RegisterRoutes registers the cart and checkout routes.
func (r *CartRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.GET("/cart", r.handler.GetCart)
	rg.DELETE("/cart", r.handler.ClearCart)
	rg.POST("/cart/items", r.handler.AddItem)
	rg.PATCH("/cart/items/:id", r.handler.ChangeQuantity)
	rg.POST("/checkout", r.handler.Checkout)
}

// GetHandler returns the underlying handler.
func (r *CartRoutes) GetHandler() *Handler {
	return r.handler
}
