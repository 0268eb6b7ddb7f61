package core

// cart.go mutates the sparse quantity map and the favorites set. Stored
// quantities are always >= 1: anything that would land on zero removes the
// entry instead, so the map never carries dead weight for an empty cart.

import "context"

// SetQuantity sets the cart quantity for a product. Values are clamped to
// >= 0, and zero removes the entry entirely.
func (s *Store) SetQuantity(ctx context.Context, productID string, qty int) {
	s.mu.Lock()
	if qty <= 0 {
		delete(s.quantities, productID)
	} else {
		s.quantities[productID] = qty
	}
	s.mu.Unlock()

	s.persist(ctx, slotQuantities)
}

// IncrementQuantity adds one to the current quantity (missing counts as 0).
func (s *Store) IncrementQuantity(ctx context.Context, productID string) {
	s.mu.Lock()
	s.quantities[productID]++
	s.mu.Unlock()

	s.persist(ctx, slotQuantities)
}

// DecrementQuantity subtracts one; at quantity 1 the entry is removed
// rather than stored as zero.
func (s *Store) DecrementQuantity(ctx context.Context, productID string) {
	s.mu.Lock()
	if s.quantities[productID] <= 1 {
		delete(s.quantities, productID)
	} else {
		s.quantities[productID]--
	}
	s.mu.Unlock()

	s.persist(ctx, slotQuantities)
}

// ResetQuantities clears the whole cart.
func (s *Store) ResetQuantities(ctx context.Context) {
	s.mu.Lock()
	s.quantities = make(map[string]int)
	s.mu.Unlock()

	s.persist(ctx, slotQuantities)
}

// ToggleFavorite flips favorite membership for a product.
func (s *Store) ToggleFavorite(ctx context.Context, productID string) {
	s.mu.Lock()
	if _, ok := s.favorites[productID]; ok {
		delete(s.favorites, productID)
	} else {
		s.favorites[productID] = struct{}{}
	}
	s.mu.Unlock()

	s.persist(ctx, slotFavorites)
}
