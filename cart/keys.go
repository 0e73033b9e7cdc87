package cart

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates what a cart key points at.
type Kind int

const (
	KindProduct Kind = iota
	KindOffer
)

// LineItemKey identifies one cart line: either a product or an offer. The
// session wire format is "<id>" for products and "offer_<id>" for offers,
// and parsing/serialization must round-trip exactly.
type LineItemKey struct {
	Kind Kind
	ID   int64
}

const offerPrefix = "offer_"

func ProductKey(id int64) LineItemKey { return LineItemKey{Kind: KindProduct, ID: id} }
func OfferKey(id int64) LineItemKey   { return LineItemKey{Kind: KindOffer, ID: id} }

// ParseLineItemKey decodes the session wire format. Anything that is neither
// a plain decimal id nor "offer_<decimal id>" is rejected.
func ParseLineItemKey(s string) (LineItemKey, error) {
	if rest, ok := strings.CutPrefix(s, offerPrefix); ok {
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return LineItemKey{}, fmt.Errorf("bad offer key %q: %w", s, err)
		}
		return OfferKey(id), nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return LineItemKey{}, fmt.Errorf("bad product key %q: %w", s, err)
	}
	return ProductKey(id), nil
}

func (k LineItemKey) String() string {
	if k.Kind == KindOffer {
		return offerPrefix + strconv.FormatInt(k.ID, 10)
	}
	return strconv.FormatInt(k.ID, 10)
}
