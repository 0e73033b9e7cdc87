package checkout

import (
	"context"
	"errors"
	"testing"

	"cradle/cart"
	"cradle/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("not found")

type fakeCatalog struct {
	products map[int64]models.Product
	offers   map[int64]models.Offer
}

func (f fakeCatalog) Product(_ context.Context, id int64) (*models.Product, error) {
	if p, ok := f.products[id]; ok {
		return &p, nil
	}
	return nil, errNotFound
}

func (f fakeCatalog) Offer(_ context.Context, id int64) (*models.Offer, error) {
	if o, ok := f.offers[id]; ok {
		return &o, nil
	}
	return nil, errNotFound
}

func TestBuildOrderItems(t *testing.T) {
	catalog := fakeCatalog{
		products: map[int64]models.Product{5: {ID: 5, Title: "Wipes"}},
		offers:   map[int64]models.Offer{3: {ID: 3, Title: "Combo"}},
	}
	c := cart.Cart{
		"5":       {Title: "Wipes", Price: 100, Quantity: 2},
		"offer_3": {Title: "Combo", Price: 50, Quantity: 1, IsOffer: true},
	}

	items := buildOrderItems(context.Background(), c, catalog)
	require.Len(t, items, 2)

	byID := map[int64]models.OrderItem{}
	for _, item := range items {
		byID[item.ItemID] = item
	}

	assert.Equal(t, models.ItemProduct, byID[5].Kind)
	assert.Equal(t, 100.0, byID[5].Price)
	assert.Equal(t, 2, byID[5].Quantity)
	assert.Equal(t, 200.0, byID[5].Subtotal)

	assert.Equal(t, models.ItemOffer, byID[3].Kind)
	assert.Equal(t, 50.0, byID[3].Subtotal)
}

func TestBuildOrderItemsSkipsVanishedEntities(t *testing.T) {
	// Product 9 has been deleted from the catalog since it was carted
	catalog := fakeCatalog{
		products: map[int64]models.Product{5: {ID: 5, Title: "Wipes"}},
	}
	c := cart.Cart{
		"5": {Title: "Wipes", Price: 100, Quantity: 1},
		"9": {Title: "Gone", Price: 30, Quantity: 1},
	}

	items := buildOrderItems(context.Background(), c, catalog)
	require.Len(t, items, 1)
	assert.Equal(t, int64(5), items[0].ItemID)
}

func TestBuildOrderItemsSkipsMalformedKeys(t *testing.T) {
	catalog := fakeCatalog{
		offers: map[int64]models.Offer{3: {ID: 3}},
	}
	c := cart.Cart{
		"offer_3":  {Price: 50, Quantity: 1, IsOffer: true},
		"mystery?": {Price: 10, Quantity: 1},
	}

	items := buildOrderItems(context.Background(), c, catalog)
	require.Len(t, items, 1)
	assert.Equal(t, models.ItemOffer, items[0].Kind)
}

// The worked pricing example: two products at 100 and one offer at 50 with
// the flat coupon zero out the total exactly.
func TestOrderTotalsFromCart(t *testing.T) {
	catalog := fakeCatalog{
		products: map[int64]models.Product{5: {ID: 5}},
		offers:   map[int64]models.Offer{3: {ID: 3}},
	}
	c := cart.Cart{
		"5":       {Price: 100, Quantity: 2},
		"offer_3": {Price: 50, Quantity: 1, IsOffer: true},
	}

	items := buildOrderItems(context.Background(), c, catalog)
	require.Len(t, items, 2)

	var subtotal float64
	for _, item := range items {
		subtotal += item.Subtotal
	}
	discount := cart.ApplyCoupon(subtotal, "SAVE250")
	total := cart.ComputeTotal(subtotal, discount)

	assert.Equal(t, 250.0, subtotal)
	assert.Equal(t, 250.0, discount)
	assert.Equal(t, 0.0, total)
}
