package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saklain-s/Ecommerce/internal/core/ports"
)

// RequireSession rejects requests made while the client holds no bearer
// token. Route-level guard; the cart store enforces the same gate itself.
func RequireSession(session ports.SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !session.IsAuthenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			return next(c)
		}
	}
}

// RequireRole enforces role-based access using the identity decoded from
// the session token.
func RequireRole(session ports.SessionResolver, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := session.Identity().Role
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
