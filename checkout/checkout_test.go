package checkout

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"cradle/cart"
	"cradle/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	cart      cart.Cart
	loadErr   error
	insertErr error
	orders    []models.Order
	cleared   bool
}

func (f *fakeStore) LoadCart(_ context.Context, _ string) (cart.Cart, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.cart, nil
}

func (f *fakeStore) ClearCart(_ context.Context, _ string) error {
	f.cleared = true
	return nil
}

func (f *fakeStore) InsertOrder(_ context.Context, order *models.Order) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.orders = append(f.orders, *order)
	return nil
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	store := &fakeStore{cart: cart.Cart{}}

	order, oerr := placeOrder(context.Background(), store, fakeCatalog{}, "u1", "a1", "")

	assert.Nil(t, order)
	require.NotNil(t, oerr)
	assert.Equal(t, http.StatusBadRequest, oerr.status)
	assert.Equal(t, "cart_empty", oerr.code)
	assert.Empty(t, store.orders, "no order row for an empty cart")
	assert.False(t, store.cleared, "refusal must leave the cart alone")
}

func TestPlaceOrderAllItemsVanished(t *testing.T) {
	store := &fakeStore{cart: cart.Cart{
		"5":       {Title: "Wipes", Price: 100, Quantity: 2},
		"offer_3": {Title: "Combo", Price: 50, Quantity: 1, IsOffer: true},
	}}

	order, oerr := placeOrder(context.Background(), store, fakeCatalog{}, "u1", "a1", "")

	assert.Nil(t, order)
	require.NotNil(t, oerr)
	assert.Equal(t, http.StatusBadRequest, oerr.status)
	assert.Equal(t, "cart_empty", oerr.code)
	assert.Empty(t, store.orders)
	assert.False(t, store.cleared)
}

func TestPlaceOrderInsertFailureKeepsCart(t *testing.T) {
	catalog := fakeCatalog{products: map[int64]models.Product{5: {ID: 5, Title: "Wipes"}}}
	store := &fakeStore{
		cart:      cart.Cart{"5": {Title: "Wipes", Price: 100, Quantity: 2}},
		insertErr: errors.New("write concern failed"),
	}

	order, oerr := placeOrder(context.Background(), store, catalog, "u1", "a1", "")

	assert.Nil(t, order)
	require.NotNil(t, oerr)
	assert.Equal(t, http.StatusInternalServerError, oerr.status)
	assert.False(t, store.cleared, "failed checkout must leave the cart intact")
}

func TestPlaceOrderCommitsAndClearsCart(t *testing.T) {
	catalog := fakeCatalog{products: map[int64]models.Product{5: {ID: 5, Title: "Wipes"}}}
	store := &fakeStore{
		cart: cart.Cart{"5": {Title: "Wipes", Price: 125, Quantity: 2}},
	}

	order, oerr := placeOrder(context.Background(), store, catalog, "u1", "a1", "SAVE250")

	require.Nil(t, oerr)
	require.NotNil(t, order)
	require.Len(t, store.orders, 1)
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, "a1", order.AddressID)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, 250.0, order.Subtotal)
	assert.Equal(t, 250.0, order.Discount)
	assert.Equal(t, 0.0, order.Total)
	assert.True(t, store.cleared, "cart is emptied only after the order commits")
}
