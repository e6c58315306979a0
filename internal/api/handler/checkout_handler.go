package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saklain-s/Ecommerce/internal/api/metrics"
	"github.com/saklain-s/Ecommerce/internal/core/domain"
	"github.com/saklain-s/Ecommerce/internal/core/ports"
)

// CheckoutHandler places an order for the current cart.
type CheckoutHandler struct {
	storefront ports.Storefront
}

func NewCheckoutHandler(storefront ports.Storefront) *CheckoutHandler {
	return &CheckoutHandler{storefront: storefront}
}

func (h *CheckoutHandler) Checkout(c echo.Context) error {
	order, err := h.storefront.Checkout(c.Request().Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAuthenticated), errors.Is(err, domain.ErrCartEmpty):
			metrics.CheckoutsTotal.WithLabelValues("rejected").Inc()
		default:
			metrics.CheckoutsTotal.WithLabelValues("upstream_error").Inc()
		}
		return err
	}

	metrics.CheckoutsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusCreated, order)
}
