package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KMO142310/el-americano-delivery/internal/domain/model"
)

// fakeCartRepo is an in-process CartRepository for service tests. Save and
// Delete errors can be injected to exercise the degraded paths.
type fakeCartRepo struct {
	mu        sync.Mutex
	carts     map[string][]model.LineItem
	saveErr   error
	deleteErr error
	saves     int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string][]model.LineItem)}
}

func (r *fakeCartRepo) Load(_ context.Context, sessionID string) *model.Cart {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart := model.NewCart()
	if items, ok := r.carts[sessionID]; ok {
		cart.Items = append(cart.Items, items...)
	}
	return cart
}

func (r *fakeCartRepo) Save(_ context.Context, sessionID string, cart *model.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.carts[sessionID] = append([]model.LineItem(nil), cart.Items...)
	return nil
}

func (r *fakeCartRepo) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.carts, sessionID)
	return nil
}

func TestCartServiceAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("adds and persists", func(t *testing.T) {
		repo := newFakeCartRepo()
		svc := NewCartService(repo)

		cart, totals := svc.AddItem(ctx, "s1", "Completo Italiano", 3500)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 1, totals.TotalQuantity)
		assert.Equal(t, int64(3500), totals.TotalPrice)

		// The addition survives a reload through the store.
		reloaded, _ := svc.Get(ctx, "s1")
		require.Len(t, reloaded.Items, 1)
		assert.Equal(t, "Completo Italiano", reloaded.Items[0].Name)
	})

	t.Run("merges repeated additions", func(t *testing.T) {
		repo := newFakeCartRepo()
		svc := NewCartService(repo)

		svc.AddItem(ctx, "s1", "Completo Italiano", 3500)
		cart, totals := svc.AddItem(ctx, "s1", "Completo Italiano", 3500)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		assert.Equal(t, int64(7000), totals.TotalPrice)
	})

	t.Run("skips invalid input without persisting", func(t *testing.T) {
		repo := newFakeCartRepo()
		svc := NewCartService(repo)

		cart, totals := svc.AddItem(ctx, "s1", "", 3500)

		assert.True(t, cart.IsEmpty())
		assert.Equal(t, model.Totals{}, totals)
		assert.Zero(t, repo.saves)
	})

	t.Run("save failure does not fail the operation", func(t *testing.T) {
		repo := newFakeCartRepo()
		repo.saveErr = errors.New("store down")
		svc := NewCartService(repo)

		cart, totals := svc.AddItem(ctx, "s1", "Completo Italiano", 3500)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 1, totals.TotalQuantity)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		repo := newFakeCartRepo()
		svc := NewCartService(repo)

		svc.AddItem(ctx, "s1", "Completo Italiano", 3500)
		cart, _ := svc.Get(ctx, "s2")

		assert.True(t, cart.IsEmpty())
	})
}

func TestCartServiceChangeQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("applies delta and persists", func(t *testing.T) {
		repo := newFakeCartRepo()
		svc := NewCartService(repo)
		added, _ := svc.AddItem(ctx, "s1", "Completo Italiano", 3500)
		itemID := added.Items[0].ID

		cart, totals, err := svc.ChangeQuantity(ctx, "s1", itemID, 2)

		require.NoError(t, err)
		assert.Equal(t, 3, cart.Items[0].Quantity)
		assert.Equal(t, int64(10500), totals.TotalPrice)
	})

	t.Run("removes item at zero", func(t *testing.T) {
		repo := newFakeCartRepo()
		svc := NewCartService(repo)
		added, _ := svc.AddItem(ctx, "s1", "Completo Italiano", 3500)
		itemID := added.Items[0].ID

		cart, _, err := svc.ChangeQuantity(ctx, "s1", itemID, -1)

		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())

		reloaded, _ := svc.Get(ctx, "s1")
		assert.True(t, reloaded.IsEmpty())
	})

	t.Run("unknown item returns ErrItemNotFound", func(t *testing.T) {
		repo := newFakeCartRepo()
		svc := NewCartService(repo)
		svc.AddItem(ctx, "s1", "Completo Italiano", 3500)

		_, _, err := svc.ChangeQuantity(ctx, "s1", "missing", 1)

		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestCartServiceClear(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCartRepo()
	svc := NewCartService(repo)
	svc.AddItem(ctx, "s1", "Completo Italiano", 3500)

	cart, totals := svc.Clear(ctx, "s1")

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, model.Totals{}, totals)

	reloaded, _ := svc.Get(ctx, "s1")
	assert.True(t, reloaded.IsEmpty())
}
