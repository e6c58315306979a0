package handler

import "github.com/saklain-s/Ecommerce/internal/core/domain"

type addItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	// Quantity defaults to 1 when omitted. The cart store rejects values
	// below 1; no clamping happens here.
	Quantity *int `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Items         []domain.LineItem `json:"items"`
	TotalQuantity int               `json:"totalQuantity"`
	TotalPrice    float64           `json:"totalPrice"`
}
