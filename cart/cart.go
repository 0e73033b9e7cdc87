package cart

import (
	"log"
	"strconv"
)

// Line is one entry in the session cart.
type Line struct {
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	MRP      float64 `json:"mrp,omitempty"`
	Image    string  `json:"image,omitempty"`
	Quantity int     `json:"quantity"`
	IsOffer  bool    `json:"is_offer,omitempty"`
}

// Cart maps the serialized line-item key to its line. It lives in the user's
// session store; an empty map is a valid cart.
type Cart map[string]Line

// AddOrIncrement inserts tmpl with quantity 1 if the key is absent, otherwise
// bumps the existing quantity. Returns the number of distinct lines.
func (c Cart) AddOrIncrement(key LineItemKey, tmpl Line) int {
	k := key.String()
	line, ok := c[k]
	if !ok {
		line = tmpl
		line.Quantity = 0
	}
	line.Quantity++
	c[k] = line
	return len(c)
}

// SetQuantity parses raw as an integer and updates the line. A value that
// does not parse is ignored on purpose: bad form input must not fail the
// whole update. Quantities clamp to a minimum of 1. Absent keys are a no-op.
func (c Cart) SetQuantity(key, raw string) {
	line, ok := c[key]
	if !ok {
		return
	}
	qty, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("cart: ignoring quantity %q for %s: %v", raw, key, err)
		return
	}
	if qty < 1 {
		qty = 1
	}
	line.Quantity = qty
	c[key] = line
}

// Remove deletes the line if present; removing an absent key is not an error.
func (c Cart) Remove(key string) {
	delete(c, key)
}

// Count returns the number of distinct lines.
func (c Cart) Count() int {
	return len(c)
}
