package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/saklain-s/Ecommerce/internal/core/domain"
	"github.com/saklain-s/Ecommerce/internal/core/ports"
)

// StorefrontService coordinates the session and cart stores across
// authentication transitions:
//
//	unauthenticated --login--> authenticated   cart restored from storage
//	authenticated --logout--> unauthenticated  cart reset, storage cleared
//
// The cart is wiped only on the explicit logout transition, never on
// merely observing an unauthenticated state, so transient reads cannot
// destroy a persisted cart.
type StorefrontService struct {
	session ports.SessionService
	cart    ports.CartService
	auth    ports.AuthClient
	orders  ports.OrderClient
	log     zerolog.Logger
}

func NewStorefrontService(
	session ports.SessionService,
	cart ports.CartService,
	auth ports.AuthClient,
	orders ports.OrderClient,
	log zerolog.Logger,
) *StorefrontService {
	return &StorefrontService{
		session: session,
		cart:    cart,
		auth:    auth,
		orders:  orders,
		log:     log,
	}
}

// Login exchanges credentials for a bearer token at the auth service, then
// runs the login transition.
func (s *StorefrontService) Login(ctx context.Context, username, password string) (domain.Identity, error) {
	token, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return domain.Identity{}, err
	}
	return s.LoginWithToken(ctx, token), nil
}

// LoginWithToken installs an already-issued token and restores the
// persisted cart. The token is not validated; an undecodable one yields an
// empty identity but still counts as authenticated.
func (s *StorefrontService) LoginWithToken(ctx context.Context, token string) domain.Identity {
	s.session.Login(ctx, token)
	if err := s.cart.Restore(ctx); err != nil {
		s.log.Warn().Err(err).Msg("cart restore failed after login")
	}

	id := s.session.Identity()
	s.log.Info().Str("username", id.Username).Str("role", id.Role).Msg("session started")
	return id
}

// Register proxies account creation to the auth service. It does not log
// the new user in.
func (s *StorefrontService) Register(ctx context.Context, input ports.RegisterInput) error {
	return s.auth.Register(ctx, input)
}

// Logout runs the logout transition: the cart is emptied and its persisted
// copy cleared before the token goes away, so a later login with the same
// token starts from an empty cart.
func (s *StorefrontService) Logout(ctx context.Context) {
	if err := s.cart.Reset(ctx); err != nil {
		s.log.Warn().Err(err).Msg("cart reset failed during logout")
	}
	s.session.Logout(ctx)
	s.log.Info().Msg("session ended")
}

// Checkout places an order for the current cart against the order service
// and clears the cart on success only. Requires an authenticated session
// whose token decodes to a username, and a non-empty cart.
func (s *StorefrontService) Checkout(ctx context.Context) (*domain.Order, error) {
	if !s.session.IsAuthenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	if s.cart.TotalQuantity() == 0 {
		return nil, domain.ErrCartEmpty
	}

	id := s.session.Identity()
	if id.Username == "" {
		// Token held but undecodable: order placement needs an identity.
		return nil, domain.ErrNotAuthenticated
	}

	order, err := s.orders.PlaceOrder(ctx, s.session.Token(), id.Username)
	if err != nil {
		return nil, err
	}

	if err := s.cart.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Int64("order_id", order.ID).Msg("failed to clear cart after checkout")
	}

	s.log.Info().Int64("order_id", order.ID).Float64("total", order.Total).Str("username", id.Username).Msg("order placed")
	return order, nil
}

// Resume re-runs the cart restore for a session that survived a restart.
// Called once at startup; a no-op when no token was persisted.
func (s *StorefrontService) Resume(ctx context.Context) {
	if !s.session.IsAuthenticated() {
		return
	}
	if err := s.cart.Restore(ctx); err != nil {
		s.log.Warn().Err(err).Msg("cart restore failed on resume")
	}
}
