package ports

import (
	"context"

	"github.com/saklain-s/Ecommerce/internal/core/domain"
)

// Storefront coordinates the session and cart stores across authentication
// transitions: login restores the persisted cart, logout wipes it.
type Storefront interface {
	Login(ctx context.Context, username, password string) (domain.Identity, error)
	LoginWithToken(ctx context.Context, token string) domain.Identity
	Register(ctx context.Context, input RegisterInput) error
	Logout(ctx context.Context)
	Checkout(ctx context.Context) (*domain.Order, error)
}
