package impl

import (
	"context"
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

func newTestOrderService(orderRepo *fakeOrderRepo, cartRepo *fakeCartRepo) usecase.OrderUsecase {
	return NewOrderService(OrderServiceParams{
		OrderRepo: orderRepo,
		CartRepo:  cartRepo,
		Identity:  &fakeIdentityGenerator{},
		Logger:    discardLogger(),
	})
}

func seedCart(t *testing.T, cartRepo *fakeCartRepo) {
	t.Helper()
	_, err := cartRepo.Save(context.Background(), "USER-1", oneCartItem())
	require.NoError(t, err)
}

func placeOrderInput() usecase.PlaceOrderInput {
	return usecase.PlaceOrderInput{
		Items: []usecase.CartItemInput{
			{ProductID: "PROD-1", Name: "Novel", Price: 1050, Quantity: 2},
			{ProductID: "PROD-2", Name: "Mouse", Price: 4999, Quantity: 1},
		},
		// 2 * 10.50 + 49.99
		TotalAmount: moneyPtr(7099),
		ShippingAddress: usecase.ShippingAddressInput{
			Street: "1 Main St", City: "Springfield", State: "IL", PostalCode: "62704",
		},
	}
}

func TestPlaceOrder_ClearsCart(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	cartRepo := newFakeCartRepo()
	svc := newTestOrderService(orderRepo, cartRepo)

	seedCart(t, cartRepo)

	order, err := svc.PlaceOrder(context.Background(), "USER-1", placeOrderInput())
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "pending", string(order.Status))
	assert.Equal(t, int64(7099), order.TotalAmount.Cents())

	cart, err := cartRepo.Get(context.Background(), "USER-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestPlaceOrder_CreateFailureLeavesCart(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	orderRepo.createErr = errors.New("table unavailable")
	cartRepo := newFakeCartRepo()
	svc := newTestOrderService(orderRepo, cartRepo)

	seedCart(t, cartRepo)

	_, err := svc.PlaceOrder(context.Background(), "USER-1", placeOrderInput())
	require.Error(t, err)

	cart, getErr := cartRepo.Get(context.Background(), "USER-1")
	require.NoError(t, getErr)
	assert.False(t, cart.IsEmpty())
	assert.Zero(t, cartRepo.clears)
}

func TestPlaceOrder_ClearFailureStillSucceeds(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	cartRepo := newFakeCartRepo()
	cartRepo.clearErr = errors.New("table unavailable")
	svc := newTestOrderService(orderRepo, cartRepo)

	order, err := svc.PlaceOrder(context.Background(), "USER-1", placeOrderInput())
	require.NoError(t, err)

	stored, err := orderRepo.Find(context.Background(), "USER-1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, stored.ID)
}

func TestPlaceOrder_Validation(t *testing.T) {
	svc := newTestOrderService(newFakeOrderRepo(), newFakeCartRepo())

	_, err := svc.PlaceOrder(context.Background(), "USER-1", usecase.PlaceOrderInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	input := placeOrderInput()
	input.Items[0].Quantity = 0
	_, err = svc.PlaceOrder(context.Background(), "USER-1", input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	// total_amount is mandatory even when the items could imply one.
	input = placeOrderInput()
	input.TotalAmount = nil
	_, err = svc.PlaceOrder(context.Background(), "USER-1", input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPlaceOrder_DeclaredTotalIsKept(t *testing.T) {
	svc := newTestOrderService(newFakeOrderRepo(), newFakeCartRepo())

	// The declared total wins even when it disagrees with the item sum.
	input := placeOrderInput()
	input.TotalAmount = moneyPtr(9999)

	order, err := svc.PlaceOrder(context.Background(), "USER-1", input)
	require.NoError(t, err)
	assert.Equal(t, int64(9999), order.TotalAmount.Cents())
}

func TestListOrders_NewestFirst(t *testing.T) {
	svc := newTestOrderService(newFakeOrderRepo(), newFakeCartRepo())

	var ids []string
	for i := 0; i < 3; i++ {
		order, err := svc.PlaceOrder(context.Background(), "USER-1", placeOrderInput())
		require.NoError(t, err)
		ids = append(ids, order.ID)
	}

	orders, err := svc.ListOrders(context.Background(), "USER-1")
	require.NoError(t, err)
	require.Len(t, orders, 3)

	listed := make([]string, 0, len(orders))
	for _, order := range orders {
		listed = append(listed, order.ID)
	}
	assert.True(t, sort.SliceIsSorted(listed, func(i, j int) bool { return listed[i] > listed[j] }),
		"orders must be listed newest first")
	assert.Equal(t, ids[len(ids)-1], listed[0])
}

func TestGetOrder(t *testing.T) {
	svc := newTestOrderService(newFakeOrderRepo(), newFakeCartRepo())

	order, err := svc.PlaceOrder(context.Background(), "USER-1", placeOrderInput())
	require.NoError(t, err)

	found, err := svc.GetOrder(context.Background(), "USER-1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)

	// Another user's key never resolves this order.
	_, err = svc.GetOrder(context.Background(), "USER-2", order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	_, err = svc.GetOrder(context.Background(), "USER-1", "ORD-MISSING")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
