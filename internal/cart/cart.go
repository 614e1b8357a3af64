// Package cart implements the purchase cart: an ordered collection of
// product lines with quantities and derived totals.
//
// All mutations are silent no-ops when the target line is absent; a
// stale view or a double click must never surface an error to the
// shopper. The type is not safe for concurrent use — the owning
// session serializes access.
package cart

import "vastrabazaar/internal/domain"

// Line is one cart entry. Quantity is always >= 1; a line whose
// quantity would drop to 0 is removed instead.
type Line struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Snapshot is a read-only copy of the cart handed to callers.
type Snapshot struct {
	Lines        []Line `json:"lines"`
	TotalItems   int    `json:"totalItems"`
	TotalCents   int64  `json:"totalCents"`
	SavingsCents int64  `json:"savingsCents"`
}

// Cart holds at most one line per product id, in insertion order.
// The zero value is an empty cart ready for use.
type Cart struct {
	lines []Line
}

// Add merges the product into an existing line or appends a new line
// with quantity 1. It never rejects.
func (c *Cart) Add(p domain.Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// Remove deletes the line for productID. Removing an absent line is a
// no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces the line's quantity. A quantity <= 0 removes
// the line. Updating an absent line is a no-op.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Quantity reports the quantity held for productID, 0 when absent.
func (c *Cart) Quantity(productID string) int {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			return c.lines[i].Quantity
		}
	}
	return 0
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for i := range c.lines {
		total += c.lines[i].Quantity
	}
	return total
}

// TotalCents is the sum of price*quantity across all lines.
func (c *Cart) TotalCents() int64 {
	var total int64
	for i := range c.lines {
		total += c.lines[i].Product.PriceCents * int64(c.lines[i].Quantity)
	}
	return total
}

// SavingsCents sums (originalPrice-price)*quantity over discounted
// lines. Lines without an original price contribute 0.
func (c *Cart) SavingsCents() int64 {
	var savings int64
	for i := range c.lines {
		orig := c.lines[i].Product.OriginalPriceCents
		if orig > c.lines[i].Product.PriceCents {
			savings += (orig - c.lines[i].Product.PriceCents) * int64(c.lines[i].Quantity)
		}
	}
	return savings
}

// Snapshot returns a copy of the current lines and derived totals.
func (c *Cart) Snapshot() Snapshot {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return Snapshot{
		Lines:        lines,
		TotalItems:   c.TotalItems(),
		TotalCents:   c.TotalCents(),
		SavingsCents: c.SavingsCents(),
	}
}
