package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

// Get returns the caller's cart.
func (h *CartHandler) Get(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrInvalidToken
	}

	cart, err := h.uc.GetCart(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Envelope{"data": cart})
}

// Save replaces the caller's cart contents.
func (h *CartHandler) Save(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrInvalidToken
	}

	var input usecase.SaveCartInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid cart body")
	}

	cart, err := h.uc.SaveCart(c.Request().Context(), identity.UserID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Envelope{"data": cart})
}

// Clear empties the caller's cart.
func (h *CartHandler) Clear(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrInvalidToken
	}

	if err := h.uc.ClearCart(c.Request().Context(), identity.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Envelope{"message": "Cart cleared"})
}
