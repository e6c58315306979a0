package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/saklain-s/Ecommerce/internal/core/domain"
)

// Catalog is the HTTP client for the remote product catalog service.
type Catalog struct {
	apiClient
}

func NewCatalog(baseURL string, httpClient *http.Client, log zerolog.Logger) *Catalog {
	return &Catalog{apiClient{name: "catalog", baseURL: baseURL, http: httpClient, log: log}}
}

func (c *Catalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return c.list(ctx, "/api/products")
}

func (c *Catalog) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return c.list(ctx, "/api/products?category="+url.QueryEscape(category))
}

func (c *Catalog) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	return c.list(ctx, "/api/products/search?q="+url.QueryEscape(query))
}

func (c *Catalog) list(ctx context.Context, path string) ([]domain.Product, error) {
	var products []domain.Product
	status, err := c.doJSON(ctx, http.MethodGet, path, "", nil, &products)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("catalog list returned %d: %w", status, domain.ErrUpstreamUnavailable)
	}
	return products, nil
}

func (c *Catalog) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	status, err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), "", nil, &product)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusOK:
		return &product, nil
	case status == http.StatusNotFound:
		return nil, domain.ErrProductNotFound
	default:
		return nil, fmt.Errorf("catalog get returned %d: %w", status, domain.ErrUpstreamUnavailable)
	}
}

// CreateProduct forwards a seller's new product to the catalog service. The
// bearer token carries the role; the remote service is the authority on
// whether it may create products.
func (c *Catalog) CreateProduct(ctx context.Context, token string, product domain.Product) (*domain.Product, error) {
	var created domain.Product
	status, err := c.doJSON(ctx, http.MethodPost, "/api/products", token, product, &created)
	if err != nil {
		return nil, err
	}
	switch status {
	case http.StatusOK, http.StatusCreated:
		return &created, nil
	case http.StatusUnauthorized:
		return nil, domain.ErrNotAuthenticated
	case http.StatusForbidden:
		return nil, domain.ErrForbidden
	default:
		return nil, fmt.Errorf("catalog create returned %d: %w", status, domain.ErrUpstreamUnavailable)
	}
}
