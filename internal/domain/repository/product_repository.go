package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is returned when no product matches the lookup key.
var ErrProductNotFound = errors.New("product not found")

// ErrEmptyPatch is returned when an update supplies no non-key fields.
var ErrEmptyPatch = errors.New("no fields to update")

// ProductPatch enumerates the updatable, non-key product attributes. Each
// field is optional; nil means "leave unchanged". Update expressions are
// built from this closed set only, never from caller-supplied attribute
// names.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *entity.Money
	ImageURL    *string
	Stock       *int
}

// IsEmpty reports whether the patch sets nothing.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.ImageURL == nil && p.Stock == nil
}

// ProductRepository defines catalog persistence over the key-value store.
// Products are keyed by the composite (product_id, category) pair and the
// table has no secondary index, so category filtering and ID-only lookups
// are scans by design.
type ProductRepository interface {
	// Create writes a new product under its composite key.
	Create(ctx context.Context, product *entity.Product) error

	// List returns all products, optionally filtered by category. The
	// category filter is a scan with a predicate, not an indexed query.
	List(ctx context.Context, category string) ([]*entity.Product, error)

	// Find performs a point lookup by the full composite key.
	Find(ctx context.Context, productID, category string) (*entity.Product, error)

	// FindByID resolves a product from its ID alone via a filtered scan.
	// Generated IDs carry enough randomness to be unique across categories.
	FindByID(ctx context.Context, productID string) (*entity.Product, error)

	// Update applies a typed patch to the non-key attributes and returns
	// the updated record. An empty patch surfaces as ErrEmptyPatch.
	Update(ctx context.Context, productID, category string, patch ProductPatch) (*entity.Product, error)

	// Delete removes a product, reporting whether a record existed.
	Delete(ctx context.Context, productID, category string) (bool, error)
}
