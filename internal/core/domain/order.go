package domain

import "errors"

var ErrUpstreamUnavailable = errors.New("upstream service unavailable")

// OrderItem is one line of a placed order as returned by the order service.
type OrderItem struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is the confirmation returned by the remote order service after a
// successful checkout.
type Order struct {
	ID        int64       `json:"id"`
	Status    string      `json:"status"`
	Total     float64     `json:"total"`
	OrderDate string      `json:"orderDate,omitempty"`
	Items     []OrderItem `json:"items,omitempty"`
}
