package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saklain-s/Ecommerce/internal/api/metrics"
	"github.com/saklain-s/Ecommerce/internal/core/ports"
)

// SessionHandler exposes login, logout, registration, and session
// inspection for the single client this gateway fronts.
type SessionHandler struct {
	storefront ports.Storefront
	session    ports.SessionResolver
}

func NewSessionHandler(storefront ports.Storefront, session ports.SessionResolver) *SessionHandler {
	return &SessionHandler{storefront: storefront, session: session}
}

// Login exchanges credentials for a bearer token and starts a session.
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.storefront.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	metrics.SessionTransitionsTotal.WithLabelValues("login").Inc()
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: true,
		Username:      id.Username,
		Role:          id.Role,
	})
}

// Register creates a new account at the user service. The new user is not
// logged in.
func (h *SessionHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.storefront.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// Logout ends the session and wipes the persisted cart.
func (h *SessionHandler) Logout(c echo.Context) error {
	h.storefront.Logout(c.Request().Context())
	metrics.SessionTransitionsTotal.WithLabelValues("logout").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Session reports the current authentication state and decoded identity.
func (h *SessionHandler) Session(c echo.Context) error {
	id := h.session.Identity()
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: h.session.IsAuthenticated(),
		Username:      id.Username,
		Role:          id.Role,
	})
}
