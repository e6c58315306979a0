package domain

import "errors"

var ErrNotAuthenticated = errors.New("not authenticated")
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")
var ErrCartEmpty = errors.New("cart is empty")

// LineItem is one product/quantity pair within a cart. Quantity is always
// at least 1; zero or negative quantities are rejected before they reach
// the cart.
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart holds the line items of the current client. At most one line item
// exists per product id; item order is insertion order and only affects
// display.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Add merges quantity into an existing line item for the same product id,
// or appends a new line item. Callers validate quantity first.
func (c *Cart) Add(p Product, quantity int) {
	for i := range c.Items {
		if c.Items[i].Product.ID == p.ID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, LineItem{Product: p, Quantity: quantity})
}

// Remove deletes the line item for productID. Removing an absent id is a
// no-op, not an error.
func (c *Cart) Remove(productID int64) {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the quantity of the line item for productID exactly.
// No-op when the id is absent. Callers validate quantity first.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalQuantity is the sum of quantities across all line items.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is the sum of price x quantity across all line items.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, it := range c.Items {
		total += it.Product.Price * float64(it.Quantity)
	}
	return total
}

// Clone returns a deep copy, so callers can hand out cart state without
// exposing the store's internal slice.
func (c *Cart) Clone() Cart {
	if len(c.Items) == 0 {
		return Cart{}
	}
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}
