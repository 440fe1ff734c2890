package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrOrderNotFound is returned when no order matches the (user, order) pair.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines order persistence. Orders are append-only records
// keyed by (user_id, order_id); the order ID sorts by creation time, so the
// store's key ordering is the listing order.
type OrderRepository interface {
	// Create writes a new order under its composite key.
	Create(ctx context.Context, order *entity.Order) error

	// ListByUser returns all of one user's orders, newest first. The
	// ordering comes from reading the sort key in reverse, not from an
	// application-level sort.
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)

	// Find performs a point lookup by the full composite key.
	Find(ctx context.Context, userID, orderID string) (*entity.Order, error)
}
