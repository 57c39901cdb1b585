// Package model defines the domain entities for the pre-order service.
package model

import "github.com/google/uuid"

// LineItem is one product entry in a cart.
//
// Quantity is always >= 1: an item driven to zero or below is removed from
// the cart, never stored. Name is the merge key for additions; ID is the
// stable handle used by quantity controls, so re-renders on the client can
// never address a stale position.
type LineItem struct {
	ID        string `json:"id" bson:"id"`
	Name      string `json:"name" bson:"name"`
	UnitPrice int64  `json:"unit_price" bson:"unit_price"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

// Subtotal returns unit price times quantity for this line.
func (li LineItem) Subtotal() int64 {
	return li.UnitPrice * int64(li.Quantity)
}

// Totals holds the derived cart aggregates. They are recomputed from the
// line items on every read and never stored alongside them.
type Totals struct {
	TotalQuantity int   `json:"total_quantity"`
	TotalPrice    int64 `json:"total_price"`
}

// Cart is an ordered sequence of line items. Insertion order is preserved
// for display and for the order message.
type Cart struct {
	Items []LineItem `json:"items"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Items: []LineItem{}}
}

// AddItem merges an addition into the cart: an existing item with the same
// name gains one unit, otherwise a new line with quantity 1 is appended.
// Returns false when the input is rejected (empty name or negative price).
func (c *Cart) AddItem(name string, unitPrice int64) bool {
	if name == "" || unitPrice < 0 {
		return false
	}
	for i := range c.Items {
		if c.Items[i].Name == name {
			c.Items[i].Quantity++
			return true
		}
	}
	c.Items = append(c.Items, LineItem{
		ID:        uuid.New().String(),
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
	return true
}

// ChangeQuantity applies a quantity delta to the item with the given ID.
// A resulting quantity of zero or less removes the item. Returns false when
// no item has that ID.
func (c *Cart) ChangeQuantity(itemID string, delta int) bool {
	for i := range c.Items {
		if c.Items[i].ID != itemID {
			continue
		}
		if c.Items[i].Quantity+delta <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		} else {
			c.Items[i].Quantity += delta
		}
		return true
	}
	return false
}

// Clear removes every item.
func (c *Cart) Clear() {
	c.Items = c.Items[:0]
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Totals folds the current items into the aggregate quantity and price.
func (c *Cart) Totals() Totals {
	var t Totals
	for _, item := range c.Items {
		t.TotalQuantity += item.Quantity
		t.TotalPrice += item.Subtotal()
	}
	return t
}
