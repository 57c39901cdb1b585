package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItem(t *testing.T) {
	t.Run("appends a new line with quantity 1", func(t *testing.T) {
		cart := NewCart()

		ok := cart.AddItem("Completo Italiano", 3500)

		assert.True(t, ok)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, "Completo Italiano", cart.Items[0].Name)
		assert.Equal(t, int64(3500), cart.Items[0].UnitPrice)
		assert.Equal(t, 1, cart.Items[0].Quantity)
		assert.NotEmpty(t, cart.Items[0].ID)
	})

	t.Run("merges repeated additions by name", func(t *testing.T) {
		cart := NewCart()

		cart.AddItem("Completo Italiano", 3500)
		cart.AddItem("Churrasco", 4500)
		cart.AddItem("Completo Italiano", 3500)

		require.Len(t, cart.Items, 2)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		assert.Equal(t, 1, cart.Items[1].Quantity)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		cart := NewCart()

		cart.AddItem("Bebida", 1500)
		cart.AddItem("Completo Italiano", 3500)
		cart.AddItem("Papas Fritas", 2500)

		require.Len(t, cart.Items, 3)
		assert.Equal(t, "Bebida", cart.Items[0].Name)
		assert.Equal(t, "Completo Italiano", cart.Items[1].Name)
		assert.Equal(t, "Papas Fritas", cart.Items[2].Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		cart := NewCart()

		ok := cart.AddItem("", 3500)

		assert.False(t, ok)
		assert.Empty(t, cart.Items)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		cart := NewCart()

		ok := cart.AddItem("Completo Italiano", -1)

		assert.False(t, ok)
		assert.Empty(t, cart.Items)
	})

	t.Run("allows a free item", func(t *testing.T) {
		cart := NewCart()

		ok := cart.AddItem("Salsa extra", 0)

		assert.True(t, ok)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, int64(0), cart.Items[0].UnitPrice)
	})
}

func TestChangeQuantity(t *testing.T) {
	setup := func() (*Cart, string) {
		cart := NewCart()
		cart.AddItem("Completo Italiano", 3500)
		cart.AddItem("Completo Italiano", 3500)
		return cart, cart.Items[0].ID
	}

	t.Run("increments quantity", func(t *testing.T) {
		cart, id := setup()

		ok := cart.ChangeQuantity(id, 1)

		assert.True(t, ok)
		assert.Equal(t, 3, cart.Items[0].Quantity)
	})

	t.Run("decrements quantity", func(t *testing.T) {
		cart, id := setup()

		ok := cart.ChangeQuantity(id, -1)

		assert.True(t, ok)
		assert.Equal(t, 1, cart.Items[0].Quantity)
	})

	t.Run("removes item when quantity reaches zero", func(t *testing.T) {
		cart, id := setup()

		ok := cart.ChangeQuantity(id, -2)

		assert.True(t, ok)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("removes item when delta overshoots below zero", func(t *testing.T) {
		cart, id := setup()

		ok := cart.ChangeQuantity(id, -10)

		assert.True(t, ok)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("returns false for unknown item", func(t *testing.T) {
		cart, _ := setup()

		ok := cart.ChangeQuantity("missing-id", 1)

		assert.False(t, ok)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})
}

func TestTotals(t *testing.T) {
	t.Run("empty cart has zero totals", func(t *testing.T) {
		cart := NewCart()

		totals := cart.Totals()

		assert.Equal(t, 0, totals.TotalQuantity)
		assert.Equal(t, int64(0), totals.TotalPrice)
	})

	t.Run("sums quantities and subtotals across lines", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem("Completo Italiano", 3500)
		cart.AddItem("Completo Italiano", 3500)
		cart.AddItem("Bebida", 1500)

		totals := cart.Totals()

		assert.Equal(t, 3, totals.TotalQuantity)
		assert.Equal(t, int64(8500), totals.TotalPrice)
	})
}

func TestClear(t *testing.T) {
	cart := NewCart()
	cart.AddItem("Completo Italiano", 3500)
	cart.AddItem("Bebida", 1500)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, Totals{}, cart.Totals())
}

func TestSubtotal(t *testing.T) {
	item := LineItem{UnitPrice: 3500, Quantity: 3}
	assert.Equal(t, int64(10500), item.Subtotal())
}
