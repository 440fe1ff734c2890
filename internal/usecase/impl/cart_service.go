package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo repository.CartRepository
	logger   *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo repository.CartRepository
	Logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo: params.CartRepo,
		logger:   params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart loads the user's cart; users without a stored cart get an empty one.
func (srv *cartService) GetCart(ctx context.Context, userID string) (*entity.Cart, error) {
	cart, err := srv.cartRepo.Get(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to get cart", slog.String("userID", userID), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get cart")
	}

	return cart, nil
}

// SaveCart replaces the cart contents wholesale. Concurrent saves are
// last-write-wins.
func (srv *cartService) SaveCart(ctx context.Context, userID string, input usecase.SaveCartInput) (*entity.Cart, error) {
	items := make([]entity.CartItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.ProductID == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("cart item is missing product_id")
		}
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("cart item quantity must be positive")
		}
		if item.Price < 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("cart item price must not be negative")
		}
		items = append(items, entity.CartItem{
			ProductID: item.ProductID,
			Category:  item.Category,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	cart, err := srv.cartRepo.Save(ctx, userID, items)
	if err != nil {
		srv.log(ctx).Error("Failed to save cart", slog.String("userID", userID), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save cart")
	}

	return cart, nil
}

// ClearCart removes the cart; clearing an absent cart succeeds.
func (srv *cartService) ClearCart(ctx context.Context, userID string) error {
	if err := srv.cartRepo.Clear(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to clear cart", slog.String("userID", userID), slog.Any("error", err))

		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}
