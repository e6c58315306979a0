package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

// Product is a catalog entry. The storefront references products but does
// not own them; they are supplied by the remote catalog service.
type Product struct {
	ID          int64   `json:"productId"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Category    string  `json:"category,omitempty"`
}
