package ports

import (
	"context"

	"github.com/saklain-s/Ecommerce/internal/core/domain"
)

// CartRepository persists the cart for the current client.
type CartRepository interface {
	// Load returns the persisted cart, or nil when none is stored.
	Load(ctx context.Context) (*domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) error
	Clear(ctx context.Context) error
}

// CartService is the cart store. Every mutation requires an authenticated
// session and persists the cart immediately on success; reads never require
// authentication.
type CartService interface {
	AddItem(ctx context.Context, product domain.Product, quantity int) error
	RemoveItem(ctx context.Context, productID int64) error
	UpdateQuantity(ctx context.Context, productID int64, quantity int) error
	Clear(ctx context.Context) error

	Items() []domain.LineItem
	TotalQuantity() int
	TotalPrice() float64

	// Restore loads the persisted cart; it is a no-op unless the session is
	// authenticated. Reset empties the cart and clears its persisted copy.
	// Both are session-transition hooks, not user-facing mutations.
	Restore(ctx context.Context) error
	Reset(ctx context.Context) error
}
