package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ShippingAddressInput is the delivery address supplied at checkout.
type ShippingAddressInput struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
}

// PlaceOrderInput defines the data required to place an order. TotalAmount
// must be present; the client-declared total is stored as sent.
type PlaceOrderInput struct {
	Items           []CartItemInput      `json:"items" validate:"required,min=1,dive"`
	TotalAmount     *entity.Money        `json:"total_amount" validate:"required"`
	ShippingAddress ShippingAddressInput `json:"shipping_address" validate:"required"`
}

// OrderUsecase defines the interface for order operations.
type OrderUsecase interface {
	// PlaceOrder writes the order and then clears the user's cart. A failed
	// order write leaves the cart untouched; a failed cart clear after a
	// successful write is logged and the order is still returned.
	PlaceOrder(ctx context.Context, userID string, input PlaceOrderInput) (*entity.Order, error)

	// ListOrders returns the user's orders newest first.
	ListOrders(ctx context.Context, userID string) ([]*entity.Order, error)

	GetOrder(ctx context.Context, userID, orderID string) (*entity.Order, error)
}
