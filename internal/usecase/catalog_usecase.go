package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreateProductInput defines the data required to add a catalog entry.
type CreateProductInput struct {
	Category    string       `json:"category" validate:"required"`
	Name        string       `json:"name" validate:"required"`
	Description string       `json:"description" validate:"required"`
	Price       entity.Money `json:"price" validate:"gte=0"`
	ImageURL    string       `json:"image_url"`
	Stock       int          `json:"stock" validate:"gte=0"`
}

// UpdateProductInput carries the product fields to change. Nil fields are
// left untouched; at least one must be set.
type UpdateProductInput struct {
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Price       *entity.Money `json:"price"`
	ImageURL    *string       `json:"image_url"`
	Stock       *int          `json:"stock"`
}

// CatalogUsecase defines the interface for product catalog operations.
type CatalogUsecase interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)

	// ListProducts returns all products, optionally narrowed to one category.
	ListProducts(ctx context.Context, category string) ([]*entity.Product, error)

	// GetProduct fetches one product. With a category this is a point lookup;
	// without one the store falls back to locating the item by identifier.
	GetProduct(ctx context.Context, productID, category string) (*entity.Product, error)

	UpdateProduct(ctx context.Context, productID, category string, input UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, productID, category string) error
}
