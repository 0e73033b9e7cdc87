package cart

import (
	"math"
	"strings"
)

// Coupon codes are a closed static table: no persistence, no expiry, no
// per-user limits. SAVE250 matches case-sensitively, baby10 in any case.
const (
	couponFlat    = "SAVE250"
	couponPercent = "baby10"

	flatDiscount = 250
	percentOff   = 0.10
)

// ComputeSubtotal sums unit price times quantity over all lines.
func ComputeSubtotal(c Cart) float64 {
	var subtotal float64
	for _, line := range c {
		subtotal += line.Price * float64(line.Quantity)
	}
	return subtotal
}

// ApplyCoupon returns the discount for a code. The discount never exceeds
// the subtotal, so a flat coupon on a small cart brings the total to zero
// rather than below it. Unknown or empty codes discount nothing.
func ApplyCoupon(subtotal float64, code string) float64 {
	var discount float64
	switch {
	case code == couponFlat:
		discount = flatDiscount
	case strings.EqualFold(code, couponPercent):
		discount = math.Round(subtotal * percentOff)
	}
	return math.Min(discount, subtotal)
}

// ComputeTotal is subtotal minus discount, clamped at zero.
func ComputeTotal(subtotal, discount float64) float64 {
	total := subtotal - discount
	if total < 0 {
		return 0
	}
	return total
}
