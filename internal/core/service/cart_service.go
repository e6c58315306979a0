package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/saklain-s/Ecommerce/internal/core/domain"
	"github.com/saklain-s/Ecommerce/internal/core/ports"
)

// CartService owns the in-memory cart of the current client and writes it
// through to the repository on every successful mutation. Mutations are
// gated on the session: without a token every mutating call fails with
// domain.ErrNotAuthenticated and leaves the cart untouched.
//
// Persistence writes are fail-silent: a failed put is logged and the
// in-memory cart remains authoritative.
type CartService struct {
	session ports.SessionResolver
	repo    ports.CartRepository
	log     zerolog.Logger

	mu   sync.RWMutex
	cart domain.Cart
}

// NewCartService returns an empty cart store. Call Restore after the
// session is established to pick up persisted state.
func NewCartService(session ports.SessionResolver, repo ports.CartRepository, log zerolog.Logger) *CartService {
	return &CartService{session: session, repo: repo, log: log}
}

// AddItem merges quantity into the line item for product.ID, or appends a
// new one. Requires an authenticated session and quantity >= 1.
func (s *CartService) AddItem(ctx context.Context, product domain.Product, quantity int) error {
	if !s.session.IsAuthenticated() {
		return domain.ErrNotAuthenticated
	}
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(product, quantity)
	s.persist(ctx)
	return nil
}

// RemoveItem deletes the line item for productID; absent ids are a no-op.
func (s *CartService) RemoveItem(ctx context.Context, productID int64) error {
	if !s.session.IsAuthenticated() {
		return domain.ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID)
	s.persist(ctx)
	return nil
}

// UpdateQuantity replaces the quantity of the line item for productID
// exactly. Quantities below 1 are rejected, never clamped. Absent ids are
// a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, productID int64, quantity int) error {
	if !s.session.IsAuthenticated() {
		return domain.ErrNotAuthenticated
	}
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetQuantity(productID, quantity)
	s.persist(ctx)
	return nil
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context) error {
	if !s.session.IsAuthenticated() {
		return domain.ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.persist(ctx)
	return nil
}

// Items returns a copy of the current line items.
func (s *CartService) Items() []domain.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Clone().Items
}

// TotalQuantity is the sum of quantities across all line items. Reads need
// no authentication.
func (s *CartService) TotalQuantity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.TotalQuantity()
}

// TotalPrice is the sum of price x quantity across all line items.
func (s *CartService) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.TotalPrice()
}

// Restore loads the persisted cart. It is a no-op while unauthenticated:
// persisted carts only ever belong to an authenticated session. The
// restored state is written back, like every other state change.
func (s *CartService) Restore(ctx context.Context) error {
	if !s.session.IsAuthenticated() {
		return nil
	}

	cart, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to load persisted cart, starting empty")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cart != nil {
		s.cart = cart.Clone()
	} else {
		s.cart.Clear()
	}
	s.persist(ctx)
	return nil
}

// Reset empties the in-memory cart and clears its persisted copy. It is
// the logout transition hook and intentionally skips the authentication
// gate: by the time it runs the session is on its way out.
func (s *CartService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()

	if err := s.repo.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted cart")
	}
	return nil
}

// persist writes the cart through. Callers hold s.mu.
func (s *CartService) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.cart.Clone()); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist cart")
	}
}
