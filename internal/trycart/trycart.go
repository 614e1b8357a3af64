// Package trycart implements the bounded trial-staging cart: up to
// MaxItems products staged for home trial against a refundable
// security deposit.
//
// Capacity and duplication are soft constraints — adding past the
// limit or re-adding a staged product is silently ignored, never an
// error. The type is not safe for concurrent use — the owning session
// serializes access.
package trycart

import (
	"time"

	"vastrabazaar/internal/domain"
)

const (
	// MaxItems is the staging capacity of a TryCart.
	MaxItems = 5

	// SecurityDepositCents is the fixed deposit paid to unlock
	// delivery of staged trial items.
	SecurityDepositCents int64 = 1000
)

// Item is one staged product with the moment it was staged.
type Item struct {
	Product domain.Product `json:"product"`
	AddedAt time.Time      `json:"addedAt"`
}

// State describes where the TryCart sits in its lifecycle.
type State string

const (
	StateEmpty     State = "empty"
	StateStaging   State = "staging"
	StateFull      State = "full"
	StateConfirmed State = "confirmed"
)

// Snapshot is a read-only copy of the TryCart handed to callers and
// to the settlement calculator.
type Snapshot struct {
	Items                []Item `json:"items"`
	MaxItems             int    `json:"maxItems"`
	SecurityDepositCents int64  `json:"securityDepositCents"`
	Paid                 bool   `json:"isPaid"`
	State                State  `json:"state"`
}

// TryCart holds at most MaxItems staged products, at most one per
// product id, in insertion order. The zero value is an empty TryCart
// ready for use.
type TryCart struct {
	items []Item
	paid  bool
}

// Add stages the product with the given timestamp. Adding a duplicate
// or adding when full is a no-op.
func (t *TryCart) Add(p domain.Product, now time.Time) {
	for i := range t.items {
		if t.items[i].Product.ID == p.ID {
			return
		}
	}
	if len(t.items) >= MaxItems {
		return
	}
	t.items = append(t.items, Item{Product: p, AddedAt: now})
}

// Remove unstages the product. Removing an absent product is a no-op.
// The paid flag is untouched.
func (t *TryCart) Remove(productID string) {
	for i := range t.items {
		if t.items[i].Product.ID == productID {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return
		}
	}
}

// Pay marks the security deposit as paid. Paying an empty TryCart or
// paying twice is a no-op.
func (t *TryCart) Pay() {
	if len(t.items) == 0 || t.paid {
		return
	}
	t.paid = true
}

// Clear abandons the trial: items and the paid flag reset together,
// from any state.
func (t *TryCart) Clear() {
	t.items = nil
	t.paid = false
}

// Contains reports whether productID is staged.
func (t *TryCart) Contains(productID string) bool {
	for i := range t.items {
		if t.items[i].Product.ID == productID {
			return true
		}
	}
	return false
}

// Get returns the staged product for productID.
func (t *TryCart) Get(productID string) (domain.Product, bool) {
	for i := range t.items {
		if t.items[i].Product.ID == productID {
			return t.items[i].Product, true
		}
	}
	return domain.Product{}, false
}

// Len is the number of staged items.
func (t *TryCart) Len() int {
	return len(t.items)
}

// Paid reports whether the security deposit has been paid.
func (t *TryCart) Paid() bool {
	return t.paid
}

// State derives the lifecycle state from the current items and flag.
func (t *TryCart) State() State {
	switch {
	case len(t.items) == 0:
		return StateEmpty
	case t.paid:
		return StateConfirmed
	case len(t.items) == MaxItems:
		return StateFull
	default:
		return StateStaging
	}
}

// Snapshot returns a copy of the current items and flags.
func (t *TryCart) Snapshot() Snapshot {
	items := make([]Item, len(t.items))
	copy(items, t.items)
	return Snapshot{
		Items:                items,
		MaxItems:             MaxItems,
		SecurityDepositCents: SecurityDepositCents,
		Paid:                 t.paid,
		State:                t.State(),
	}
}
