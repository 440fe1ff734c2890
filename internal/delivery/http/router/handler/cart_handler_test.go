package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/domain/entity"
)

func TestCartGet(t *testing.T) {
	uc := &fakeCartUsecase{getOut: &entity.Cart{
		UserID: "USER-1",
		Items: []entity.CartItem{
			{ProductID: "PROD-1", Name: "Novel", Price: 1050, Quantity: 2},
		},
	}}
	h := NewCartHandler(uc, discardLogger())

	c, rec := newEchoContext(t, http.MethodGet, "/api/cart", "")
	authenticate(c, "USER-1")
	render(c, rec, h.Get)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec.Body.Bytes())
	data := body["data"].(map[string]any)
	items := data["items"].([]any)
	assert.Len(t, items, 1)
}

func TestCartSave(t *testing.T) {
	uc := &fakeCartUsecase{saveOut: &entity.Cart{UserID: "USER-1"}}
	h := NewCartHandler(uc, discardLogger())

	c, rec := newEchoContext(t, http.MethodPost, "/api/cart",
		`{"items":[{"product_id":"PROD-1","price":10.50,"quantity":2}]}`)
	authenticate(c, "USER-1")
	render(c, rec, h.Save)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartClear(t *testing.T) {
	h := NewCartHandler(&fakeCartUsecase{}, discardLogger())

	c, rec := newEchoContext(t, http.MethodDelete, "/api/cart", "")
	authenticate(c, "USER-1")
	render(c, rec, h.Clear)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec.Body.Bytes())
	assert.Equal(t, true, body["success"])
}
