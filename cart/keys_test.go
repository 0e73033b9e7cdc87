package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineItemKey(t *testing.T) {
	key, err := ParseLineItemKey("5")
	require.NoError(t, err)
	assert.Equal(t, KindProduct, key.Kind)
	assert.Equal(t, int64(5), key.ID)

	key, err = ParseLineItemKey("offer_3")
	require.NoError(t, err)
	assert.Equal(t, KindOffer, key.Kind)
	assert.Equal(t, int64(3), key.ID)
}

func TestParseLineItemKeyRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "abc", "offer_", "offer_x", "1.5", "offer_1.5", "product_2"} {
		_, err := ParseLineItemKey(bad)
		assert.Error(t, err, "key %q should not parse", bad)
	}
}

func TestLineItemKeyRoundTrip(t *testing.T) {
	for _, wire := range []string{"1", "42", "offer_1", "offer_9000"} {
		key, err := ParseLineItemKey(wire)
		require.NoError(t, err)
		assert.Equal(t, wire, key.String())
	}

	assert.Equal(t, "7", ProductKey(7).String())
	assert.Equal(t, "offer_7", OfferKey(7).String())
}
