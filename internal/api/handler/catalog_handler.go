package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/saklain-s/Ecommerce/internal/core/domain"
	"github.com/saklain-s/Ecommerce/internal/core/ports"
)

// CatalogHandler proxies product reads to the remote catalog service and
// forwards product creation for sellers.
type CatalogHandler struct {
	catalog ports.CatalogClient
	session ports.SessionResolver
}

func NewCatalogHandler(catalog ports.CatalogClient, session ports.SessionResolver) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, session: session}
}

// List returns products, optionally filtered by ?category= or searched via
// ?q=.
func (h *CatalogHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		products []domain.Product
		err      error
	)
	switch {
	case c.QueryParam("q") != "":
		products, err = h.catalog.SearchProducts(ctx, c.QueryParam("q"))
	case c.QueryParam("category") != "":
		products, err = h.catalog.ListProductsByCategory(ctx, c.QueryParam("category"))
	default:
		products, err = h.catalog.ListProducts(ctx)
	}
	if err != nil {
		return err
	}

	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

// Get returns a single product by id.
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	product, err := h.catalog.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

type createProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
}

// Create forwards a new product to the catalog service with the session's
// bearer token. Route-level RBAC restricts this to sellers and admins.
func (h *CatalogHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.catalog.CreateProduct(c.Request().Context(), h.session.Token(), domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}
