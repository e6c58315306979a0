package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/saklain-s/Ecommerce/internal/api/handler"
	"github.com/saklain-s/Ecommerce/internal/api/middleware"
	"github.com/saklain-s/Ecommerce/internal/core/domain"
	"github.com/saklain-s/Ecommerce/internal/core/ports"
)

// Dependencies carries the constructed services the router wires into
// handlers. Stores are built once at startup and owned by the process; the
// router only holds references.
type Dependencies struct {
	Storefront ports.Storefront
	Session    ports.SessionResolver
	Cart       ports.CartService
	Catalog    ports.CatalogClient
	Store      ports.KeyValueStore
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Handlers ---
	sessionHandler := handler.NewSessionHandler(deps.Storefront, deps.Session)
	cartHandler := handler.NewCartHandler(deps.Cart, deps.Catalog)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog, deps.Session)
	checkoutHandler := handler.NewCheckoutHandler(deps.Storefront)

	// --- Auth / session routes ---
	e.POST("/auth/login", sessionHandler.Login)
	e.POST("/auth/register", sessionHandler.Register)
	e.POST("/auth/logout", sessionHandler.Logout)
	e.GET("/session", sessionHandler.Session)

	// --- Cart routes (reads are open, mutations gated by the store) ---
	e.GET("/cart", cartHandler.Get)
	e.POST("/cart/items", cartHandler.AddItem)
	e.PUT("/cart/items/:productID", cartHandler.UpdateQuantity)
	e.DELETE("/cart/items/:productID", cartHandler.RemoveItem)
	e.DELETE("/cart", cartHandler.Clear)

	// --- Checkout ---
	e.POST("/checkout", checkoutHandler.Checkout, middleware.RequireSession(deps.Session))

	// --- Catalog proxy ---
	e.GET("/products", catalogHandler.List)
	e.GET("/products/:id", catalogHandler.Get)
	e.POST("/products", catalogHandler.Create,
		middleware.RequireSession(deps.Session),
		middleware.RequireRole(deps.Session, domain.RoleSeller, domain.RoleAdmin),
	)

	// --- Health probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Store)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
