package ports

import (
	"context"

	"github.com/saklain-s/Ecommerce/internal/core/domain"
)

// OrderClient talks to the remote order service. The order payload itself is
// server-side state; placing an order only needs the bearer token and the
// username the token decodes to.
type OrderClient interface {
	PlaceOrder(ctx context.Context, token, username string) (*domain.Order, error)
}
