package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddOrIncrement(t *testing.T) {
	c := Cart{}

	count := c.AddOrIncrement(ProductKey(5), Line{Title: "Wipes", Price: 100})
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, c["5"].Quantity)

	// Adding the same key again bumps quantity, not line count
	count = c.AddOrIncrement(ProductKey(5), Line{Title: "Wipes", Price: 100})
	assert.Equal(t, 1, count)
	assert.Equal(t, 2, c["5"].Quantity)

	count = c.AddOrIncrement(OfferKey(3), Line{Title: "Combo", Price: 50, IsOffer: true})
	assert.Equal(t, 2, count)
	assert.Equal(t, 1, c["offer_3"].Quantity)
	assert.True(t, c["offer_3"].IsOffer)
}

func TestSetQuantity(t *testing.T) {
	c := Cart{"5": {Title: "Wipes", Price: 100, Quantity: 2}}

	c.SetQuantity("5", "7")
	assert.Equal(t, 7, c["5"].Quantity)

	// Non-numeric input leaves the quantity unchanged
	c.SetQuantity("5", "lots")
	assert.Equal(t, 7, c["5"].Quantity)

	// Clamped to a minimum of 1
	c.SetQuantity("5", "0")
	assert.Equal(t, 1, c["5"].Quantity)
	c.SetQuantity("5", "-3")
	assert.Equal(t, 1, c["5"].Quantity)

	// Absent keys are a no-op
	c.SetQuantity("99", "4")
	assert.Len(t, c, 1)
}

func TestRemove(t *testing.T) {
	c := Cart{"5": {Quantity: 1}, "offer_3": {Quantity: 1}}

	c.Remove("5")
	assert.Len(t, c, 1)

	// Removing an absent key never fails
	c.Remove("5")
	c.Remove("nonsense")
	assert.Len(t, c, 1)
	assert.Equal(t, 1, c.Count())
}
