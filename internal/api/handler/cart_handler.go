package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/saklain-s/Ecommerce/internal/api/metrics"
	"github.com/saklain-s/Ecommerce/internal/core/domain"
	"github.com/saklain-s/Ecommerce/internal/core/ports"
)

// CartHandler exposes the cart store over HTTP. Items are added by product
// id; the handler resolves the full product from the catalog before the
// cart sees it.
type CartHandler struct {
	cart    ports.CartService
	catalog ports.CatalogClient
}

func NewCartHandler(cart ports.CartService, catalog ports.CatalogClient) *CartHandler {
	return &CartHandler{cart: cart, catalog: catalog}
}

// Get returns the cart contents and derived totals.
func (h *CartHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cartResponse())
}

// AddItem resolves the product and merges it into the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	product, err := h.catalog.GetProduct(c.Request().Context(), req.ProductID)
	if err != nil {
		return err
	}

	if err := h.cart.AddItem(c.Request().Context(), *product, quantity); err != nil {
		countMutation("add", err)
		return err
	}
	countMutation("add", nil)
	return c.JSON(http.StatusOK, h.cartResponse())
}

// UpdateQuantity replaces the quantity of one line item.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.cart.UpdateQuantity(c.Request().Context(), productID, req.Quantity); err != nil {
		countMutation("update", err)
		return err
	}
	countMutation("update", nil)
	return c.JSON(http.StatusOK, h.cartResponse())
}

// RemoveItem deletes one line item; removing an absent id succeeds.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if err := h.cart.RemoveItem(c.Request().Context(), productID); err != nil {
		countMutation("remove", err)
		return err
	}
	countMutation("remove", nil)
	return c.JSON(http.StatusOK, h.cartResponse())
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.cart.Clear(c.Request().Context()); err != nil {
		countMutation("clear", err)
		return err
	}
	countMutation("clear", nil)
	return c.JSON(http.StatusOK, h.cartResponse())
}

func (h *CartHandler) cartResponse() cartResponse {
	items := h.cart.Items()
	if items == nil {
		items = []domain.LineItem{}
	}
	return cartResponse{
		Items:         items,
		TotalQuantity: h.cart.TotalQuantity(),
		TotalPrice:    h.cart.TotalPrice(),
	}
}

func countMutation(op string, err error) {
	result := "ok"
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		result = "unauthorized"
	case errors.Is(err, domain.ErrInvalidQuantity):
		result = "invalid"
	case err != nil:
		result = "error"
	}
	metrics.CartMutationsTotal.WithLabelValues(op, result).Inc()
}
