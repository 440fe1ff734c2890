package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	identity    service.IdentityGenerator
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Identity    service.IdentityGenerator
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		identity:    params.Identity,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct adds a catalog entry under a fresh identifier.
func (srv *catalogService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}
	if input.Stock < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("stock must not be negative")
	}

	product := &entity.Product{
		ID:          srv.identity.NewProductID(),
		Category:    input.Category,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Stock:       input.Stock,
		CreatedAt:   time.Now().UTC(),
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("productID", product.ID), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("productID", product.ID),
		slog.String("category", product.Category),
	)

	return product, nil
}

// ListProducts returns all products, optionally narrowed to one category.
func (srv *catalogService) ListProducts(ctx context.Context, category string) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, category)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.String("category", category), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	return products, nil
}

// GetProduct fetches one product, by point lookup when the category is known.
func (srv *catalogService) GetProduct(ctx context.Context, productID, category string) (*entity.Product, error) {
	var (
		product *entity.Product
		err     error
	)
	if category != "" {
		product, err = srv.productRepo.Find(ctx, productID, category)
	} else {
		product, err = srv.productRepo.FindByID(ctx, productID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to get product", slog.String("productID", productID), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get product")
	}

	return product, nil
}

// UpdateProduct applies a partial update and returns the new product state.
func (srv *catalogService) UpdateProduct(ctx context.Context, productID, category string, input usecase.UpdateProductInput) (*entity.Product, error) {
	// Updates address a single item, and the item key is (product_id,
	// category); an empty category is never a valid sort key.
	if category == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("category is required")
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}
	if input.Stock != nil && *input.Stock < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("stock must not be negative")
	}

	patch := repository.ProductPatch{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Stock:       input.Stock,
	}

	product, err := srv.productRepo.Update(ctx, productID, category, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmptyPatch):
			return nil, domainerrors.ErrNoFieldsToUpdate
		case errors.Is(err, repository.ErrProductNotFound):
			return nil, domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to update product", slog.String("productID", productID), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.String("productID", productID))

	return product, nil
}

// DeleteProduct removes a product; deleting an unknown product is reported
// as not found rather than silently succeeding.
func (srv *catalogService) DeleteProduct(ctx context.Context, productID, category string) error {
	if category == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("category is required")
	}

	deleted, err := srv.productRepo.Delete(ctx, productID, category)
	if err != nil {
		srv.log(ctx).Error("Failed to delete product", slog.String("productID", productID), slog.Any("error", err))

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}
	if !deleted {
		return domainerrors.ErrProductNotFound
	}

	srv.log(ctx).Info("Product deleted", slog.String("productID", productID))

	return nil
}
