package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartItemInput is one line item in a cart replacement.
type CartItemInput struct {
	ProductID string       `json:"product_id" validate:"required"`
	Category  string       `json:"category"`
	Name      string       `json:"name"`
	Price     entity.Money `json:"price"`
	Quantity  int          `json:"quantity" validate:"gt=0"`
}

// SaveCartInput replaces the cart contents wholesale.
type SaveCartInput struct {
	Items []CartItemInput `json:"items" validate:"dive"`
}

// CartUsecase defines the interface for cart operations. The cart is a single
// document per user; saves replace it and concurrent saves are last-write-wins.
type CartUsecase interface {
	GetCart(ctx context.Context, userID string) (*entity.Cart, error)
	SaveCart(ctx context.Context, userID string, input SaveCartInput) (*entity.Cart, error)
	ClearCart(ctx context.Context, userID string) error
}
