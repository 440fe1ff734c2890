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

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

// Place checks the caller out: the order is written first, and only then is
// the cart cleared.
func (h *OrderHandler) Place(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrInvalidToken
	}

	var input usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid order body")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), identity.UserID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, response.Envelope{
		"data":    order,
		"message": "Order placed",
	})
}

// List returns the caller's orders, newest first.
func (h *OrderHandler) List(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrInvalidToken
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Envelope{
		"data":  orders,
		"count": len(orders),
	})
}

// Get returns one of the caller's orders.
func (h *OrderHandler) Get(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrInvalidToken
	}

	order, err := h.uc.GetOrder(c.Request().Context(), identity.UserID, c.Param("order_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Envelope{"data": order})
}
