// Package session owns per-shopper state: one purchase cart, one
// TryCart and the sign-in flag, behind a single mutex so that one
// mutation completes before the next begins. Sessions are held in
// memory only and expire with their token; nothing survives a
// restart.
package session

import (
	"sync"
	"time"

	"vastrabazaar/internal/cart"
	"vastrabazaar/internal/domain"
	"vastrabazaar/internal/trycart"
)

// Session is the composition root for a shopper's state. All store
// mutations go through its methods; the embedded stores are never
// handed out, only snapshots.
type Session struct {
	ID string

	mu        sync.Mutex
	cart      cart.Cart
	trycart   trycart.TryCart
	signedIn  bool
	customer  string
	expiresAt time.Time
	now       func() time.Time
}

func newSession(id string, now func() time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:        id,
		expiresAt: now().Add(ttl),
		now:       now,
	}
}

// AddToCart merges the product into the purchase cart.
func (s *Session) AddToCart(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(p)
}

// RemoveFromCart deletes the product's cart line if present.
func (s *Session) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID)
}

// UpdateCartQuantity sets the line's quantity; <= 0 removes the line.
func (s *Session) UpdateCartQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(productID, quantity)
}

// ClearCart empties the purchase cart.
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// Cart returns a read-only snapshot of the purchase cart.
func (s *Session) Cart() cart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Snapshot()
}

// AddToTryCart stages the product; full or duplicate is a no-op.
func (s *Session) AddToTryCart(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trycart.Add(p, s.now())
}

// RemoveFromTryCart unstages the product if present.
func (s *Session) RemoveFromTryCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trycart.Remove(productID)
}

// ClearTryCart abandons the trial, resetting items and the paid flag.
func (s *Session) ClearTryCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trycart.Clear()
}

// PayDeposit marks the security deposit as paid; empty or already
// paid is a no-op.
func (s *Session) PayDeposit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trycart.Pay()
}

// MoveToCart transfers a staged product into the purchase cart as one
// transaction: the product is added (or merged) in the cart and
// removed from the TryCart under the same lock, so no observer can
// see it in neither container. Not staged is a no-op.
func (s *Session) MoveToCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.trycart.Get(productID)
	if !ok {
		return
	}
	s.cart.Add(p)
	s.trycart.Remove(productID)
}

// TryCart returns a read-only snapshot of the trial cart.
func (s *Session) TryCart() trycart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trycart.Snapshot()
}

// SignIn records the shopper as signed in under the given name.
func (s *Session) SignIn(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signedIn = true
	s.customer = name
}

// SignOut clears the sign-in flag.
func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signedIn = false
	s.customer = ""
}

// SignedIn reports the sign-in flag and the recorded name.
func (s *Session) SignedIn() (bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signedIn, s.customer
}

func (s *Session) expired(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.After(s.expiresAt)
}

func (s *Session) touch(now time.Time, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiresAt = now.Add(ttl)
}
