package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: logger}
}

// List returns all products, optionally filtered by the category query param.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Envelope{
		"data":  products,
		"count": len(products),
	})
}

// Get returns one product by identifier, with an optional category hint.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("product_id"), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Envelope{"data": product})
}

// Create adds a product to the catalog.
func (h *ProductHandler) Create(c echo.Context) error {
	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid product body")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, response.Envelope{"data": product})
}

// Update applies a partial product update.
func (h *ProductHandler) Update(c echo.Context) error {
	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid product body")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), c.Param("product_id"), c.QueryParam("category"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Envelope{"data": product})
}

// Delete removes a product from the catalog.
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("product_id"), c.QueryParam("category")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Envelope{"message": "Product deleted"})
}
