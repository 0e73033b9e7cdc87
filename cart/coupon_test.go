package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSubtotal(t *testing.T) {
	assert.Zero(t, ComputeSubtotal(Cart{}))

	c := Cart{
		"5":       {Price: 100, Quantity: 2},
		"offer_3": {Price: 50, Quantity: 1},
	}
	assert.Equal(t, 250.0, ComputeSubtotal(c))
}

func TestApplyCouponFlat(t *testing.T) {
	assert.Equal(t, 250.0, ApplyCoupon(1000, "SAVE250"))

	// Clamped to the subtotal so the total never goes negative
	assert.Equal(t, 100.0, ApplyCoupon(100, "SAVE250"))

	// Flat code is case-sensitive
	assert.Equal(t, 0.0, ApplyCoupon(1000, "save250"))
}

func TestApplyCouponPercent(t *testing.T) {
	assert.Equal(t, 100.0, ApplyCoupon(1000, "baby10"))

	// Any casing works, and 99.9 rounds up to 100
	assert.Equal(t, 100.0, ApplyCoupon(999, "BABY10"))
	assert.Equal(t, 100.0, ApplyCoupon(999, "Baby10"))
}

func TestApplyCouponUnknown(t *testing.T) {
	assert.Equal(t, 0.0, ApplyCoupon(1000, ""))
	assert.Equal(t, 0.0, ApplyCoupon(1000, "NOPE"))
}

func TestComputeTotal(t *testing.T) {
	assert.Equal(t, 750.0, ComputeTotal(1000, 250))
	assert.Equal(t, 0.0, ComputeTotal(250, 250))
	assert.Equal(t, 0.0, ComputeTotal(100, 250))
}
