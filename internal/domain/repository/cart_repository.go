package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartRepository defines cart persistence. Carts are keyed by user ID with
// whole-document replace semantics; the store resolves concurrent saves
// last-write-wins.
type CartRepository interface {
	// Get returns the user's cart. An absent record is not an error; it
	// comes back as an empty cart.
	Get(ctx context.Context, userID string) (*entity.Cart, error)

	// Save replaces the user's cart wholesale, creating it if absent.
	Save(ctx context.Context, userID string, items []entity.CartItem) (*entity.Cart, error)

	// Clear deletes the user's cart. Clearing an absent cart is a no-op.
	Clear(ctx context.Context, userID string) error
}
