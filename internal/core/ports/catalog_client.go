package ports

import (
	"context"

	"github.com/saklain-s/Ecommerce/internal/core/domain"
)

// CatalogClient talks to the remote product catalog service.
type CatalogClient interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	// CreateProduct requires a bearer token with seller or admin role.
	CreateProduct(ctx context.Context, token string, product domain.Product) (*domain.Product, error)
}
