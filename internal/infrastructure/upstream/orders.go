package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/saklain-s/Ecommerce/internal/core/domain"
)

// Orders is the HTTP client for the remote order service.
type Orders struct {
	apiClient
}

func NewOrders(baseURL string, httpClient *http.Client, log zerolog.Logger) *Orders {
	return &Orders{apiClient{name: "orders", baseURL: baseURL, http: httpClient, log: log}}
}

// PlaceOrder submits the order for username. The order payload lives
// server-side; the call carries only the bearer token and the path
// parameter.
func (o *Orders) PlaceOrder(ctx context.Context, token, username string) (*domain.Order, error) {
	var order domain.Order
	path := "/api/orders/place/" + url.PathEscape(username)
	status, err := o.doJSON(ctx, http.MethodPost, path, token, struct{}{}, &order)
	if err != nil {
		return nil, err
	}
	switch status {
	case http.StatusOK, http.StatusCreated:
		return &order, nil
	case http.StatusUnauthorized:
		return nil, domain.ErrNotAuthenticated
	case http.StatusBadRequest:
		return nil, domain.ErrCartEmpty
	default:
		return nil, fmt.Errorf("order placement returned %d: %w", status, domain.ErrUpstreamUnavailable)
	}
}
