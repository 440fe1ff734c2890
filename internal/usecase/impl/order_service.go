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

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	identity  service.IdentityGenerator
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	CartRepo  repository.CartRepository
	Identity  service.IdentityGenerator
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		cartRepo:  params.CartRepo,
		identity:  params.Identity,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder writes the order, then clears the cart. The order write is the
// commit point: if it fails the cart is untouched, and if the cart clear
// fails afterwards the order still stands and the stale cart is only logged.
func (srv *orderService) PlaceOrder(ctx context.Context, userID string, input usecase.PlaceOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order must contain at least one item")
	}
	if input.TotalAmount == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("total_amount is required")
	}
	if *input.TotalAmount < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("total_amount must not be negative")
	}

	items := make([]entity.CartItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.ProductID == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("order item is missing product_id")
		}
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("order item quantity must be positive")
		}
		if item.Price < 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("order item price must not be negative")
		}
		items = append(items, entity.CartItem{
			ProductID: item.ProductID,
			Category:  item.Category,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	// The declared total is stored as sent, without reconciling it
	// against the item prices.
	total := *input.TotalAmount

	orderID, err := srv.identity.NewOrderID()
	if err != nil {
		srv.log(ctx).Error("Failed to generate order id", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	order := &entity.Order{
		UserID:      userID,
		ID:          orderID,
		Items:       items,
		TotalAmount: total,
		ShippingAddress: entity.ShippingAddress{
			Street:     input.ShippingAddress.Street,
			City:       input.ShippingAddress.City,
			State:      input.ShippingAddress.State,
			PostalCode: input.ShippingAddress.PostalCode,
			Phone:      input.ShippingAddress.Phone,
		},
		Status:    entity.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to create order",
			slog.String("userID", userID),
			slog.String("orderID", orderID),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	if err := srv.cartRepo.Clear(ctx, userID); err != nil {
		srv.log(ctx).Warn("Order created but cart clear failed",
			slog.String("userID", userID),
			slog.String("orderID", orderID),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Order placed",
		slog.String("userID", userID),
		slog.String("orderID", orderID),
		slog.String("total", total.String()),
	)

	return order, nil
}

// ListOrders returns the user's orders newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.String("userID", userID), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder fetches one order scoped to its owner.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := srv.orderRepo.Find(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}
		srv.log(ctx).Error("Failed to get order", slog.String("userID", userID), slog.String("orderID", orderID), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get order")
	}

	return order, nil
}
