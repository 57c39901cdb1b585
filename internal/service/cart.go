package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/KMO142310/el-americano-delivery/internal/domain/model"
	"github.com/KMO142310/el-americano-delivery/internal/metrics"
	"github.com/KMO142310/el-americano-delivery/internal/repository"
)

// CartService owns the per-session cart state machine. Every mutation is
// mirrored to the session store so the cart survives a page reload; a
// failed write only costs that survival, never the operation itself.
type CartService interface {
	// Get returns the session's current cart and its derived totals.
	Get(ctx context.Context, sessionID string) (*model.Cart, model.Totals)

	// AddItem merges an addition into the session's cart. Invalid input
	// (empty name, negative price) is logged and skipped without error.
	AddItem(ctx context.Context, sessionID, name string, unitPrice int64) (*model.Cart, model.Totals)

	// ChangeQuantity applies a delta to the identified item, removing it
	// when the result drops to zero or below. Returns ErrItemNotFound for
	// an unknown item ID.
	ChangeQuantity(ctx context.Context, sessionID, itemID string, delta int) (*model.Cart, model.Totals, error)

	// Clear empties the session's cart unconditionally.
	Clear(ctx context.Context, sessionID string) (*model.Cart, model.Totals)
}

// CartServiceImpl implements CartService on top of a session-scoped
// cart repository.
type CartServiceImpl struct {
	repo repository.CartRepository
}

// NewCartService creates a new cart service.
func NewCartService(repo repository.CartRepository) *CartServiceImpl {
	return &CartServiceImpl{repo: repo}
}

// Get returns the session's cart and totals.
func (s *CartServiceImpl) Get(ctx context.Context, sessionID string) (*model.Cart, model.Totals) {
	cart := s.repo.Load(ctx, sessionID)
	return cart, cart.Totals()
}

// AddItem merges an addition into the session's cart and persists it.
func (s *CartServiceImpl) AddItem(ctx context.Context, sessionID, name string, unitPrice int64) (*model.Cart, model.Totals) {
	cart := s.repo.Load(ctx, sessionID)

	if !cart.AddItem(name, unitPrice) {
		// Bad add-to-cart data is logged and skipped,
		// never surfaced to the customer.
		log.Warn().
			Str("session_id", sessionID).
			Str("name", name).
			Int64("unit_price", unitPrice).
			Msg("Ignoring invalid add-to-cart input")
		metrics.RecordCartOperation("add", "invalid")
		return cart, cart.Totals()
	}

	s.persist(ctx, sessionID, cart)
	metrics.RecordCartOperation("add", "ok")
	return cart, cart.Totals()
}

// ChangeQuantity applies a delta to an item, removing it at zero.
func (s *CartServiceImpl) ChangeQuantity(ctx context.Context, sessionID, itemID string, delta int) (*model.Cart, model.Totals, error) {
	cart := s.repo.Load(ctx, sessionID)

	if !cart.ChangeQuantity(itemID, delta) {
		metrics.RecordCartOperation("change_quantity", "not_found")
		return cart, cart.Totals(), ErrItemNotFound
	}

	s.persist(ctx, sessionID, cart)
	metrics.RecordCartOperation("change_quantity", "ok")
	return cart, cart.Totals(), nil
}

// Clear empties the session's cart.
func (s *CartServiceImpl) Clear(ctx context.Context, sessionID string) (*model.Cart, model.Totals) {
	cart := model.NewCart()
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("Could not clear persisted cart")
	}
	metrics.RecordCartOperation("clear", "ok")
	return cart, cart.Totals()
}

// persist mirrors the cart to the session store. Storage failures degrade
// to a cart that will not survive a reload.
func (s *CartServiceImpl) persist(ctx context.Context, sessionID string, cart *model.Cart) {
	if err := s.repo.Save(ctx, sessionID, cart); err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("Could not save cart")
	}
}
