package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

func newTestCartService(cartRepo *fakeCartRepo) usecase.CartUsecase {
	return NewCartService(CartServiceParams{
		CartRepo: cartRepo,
		Logger:   discardLogger(),
	})
}

func TestGetCart_AbsentIsEmpty(t *testing.T) {
	svc := newTestCartService(newFakeCartRepo())

	cart, err := svc.GetCart(context.Background(), "USER-1")
	require.NoError(t, err)
	assert.Equal(t, "USER-1", cart.UserID)
	assert.True(t, cart.IsEmpty())
}

func TestSaveCart_ReplacesWholesale(t *testing.T) {
	repo := newFakeCartRepo()
	svc := newTestCartService(repo)

	_, err := svc.SaveCart(context.Background(), "USER-1", usecase.SaveCartInput{
		Items: []usecase.CartItemInput{
			{ProductID: "PROD-1", Name: "Novel", Price: 1000, Quantity: 2},
			{ProductID: "PROD-2", Name: "Mouse", Price: 4999, Quantity: 1},
		},
	})
	require.NoError(t, err)

	// A later save fully replaces the earlier one: last write wins.
	_, err = svc.SaveCart(context.Background(), "USER-1", usecase.SaveCartInput{
		Items: []usecase.CartItemInput{
			{ProductID: "PROD-3", Name: "Lamp", Price: 2500, Quantity: 1},
		},
	})
	require.NoError(t, err)

	cart, err := svc.GetCart(context.Background(), "USER-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "PROD-3", cart.Items[0].ProductID)
}

func TestSaveCart_Validation(t *testing.T) {
	svc := newTestCartService(newFakeCartRepo())

	_, err := svc.SaveCart(context.Background(), "USER-1", usecase.SaveCartInput{
		Items: []usecase.CartItemInput{{ProductID: "", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.SaveCart(context.Background(), "USER-1", usecase.SaveCartInput{
		Items: []usecase.CartItemInput{{ProductID: "PROD-1", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestClearCart_ThenEmpty(t *testing.T) {
	svc := newTestCartService(newFakeCartRepo())

	_, err := svc.SaveCart(context.Background(), "USER-1", usecase.SaveCartInput{
		Items: []usecase.CartItemInput{{ProductID: "PROD-1", Price: 1000, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(context.Background(), "USER-1"))
	// Clearing again is still fine.
	require.NoError(t, svc.ClearCart(context.Background(), "USER-1"))

	cart, err := svc.GetCart(context.Background(), "USER-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}
