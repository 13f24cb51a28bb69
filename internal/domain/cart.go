package domain

import "time"

// CartItem is a pending booking line inside a user's cart. Total is always
// re-derived from PricePerPerson and People rather than trusted from a
// stored value.
type CartItem struct {
	ID             string        `json:"id"`
	Tour           TourSnapshot  `json:"tour"`
	StartDate      *time.Time    `json:"startDate,omitempty"`
	People         int           `json:"people"`
	PricePerPerson float64       `json:"pricePerPerson"`
	Total          float64       `json:"total"`
	Notes          *string       `json:"notes,omitempty"`
}

// Cart is a per-user pending-booking aggregate, not yet converted to
// confirmed orders. The whole cart is persisted as one document.
type Cart struct {
	UserID     int64      `json:"userId"`
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// NewCart returns an empty cart for the given user.
func NewCart(userID int64) *Cart {
	return &Cart{
		UserID: userID,
		Items:  []CartItem{},
	}
}

// Recalculate re-derives every line total and the cart total. Invariants
// after the call: item.Total == item.PricePerPerson * item.People and
// cart.TotalPrice == sum of line totals.
func (c *Cart) Recalculate() {
	total := 0.0
	for i := range c.Items {
		c.Items[i].Total = c.Items[i].PricePerPerson * float64(c.Items[i].People)
		total += c.Items[i].Total
	}
	c.TotalPrice = total
}

// FindItem returns a pointer to the item with the given id, or nil.
func (c *Cart) FindItem(itemID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// RemoveItem deletes the item with the given id, preserving the order of
// the remaining items. Returns false when the item is not in the cart.
func (c *Cart) RemoveItem(itemID string) bool {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
