package addresses

import (
	"context"
	"errors"
	"testing"

	"cradle/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	addresses  map[string]models.Address
	referenced map[string]bool
	removed    []string
}

func (f *fakeStore) Get(_ context.Context, userID, addressID string) (*models.Address, error) {
	if a, ok := f.addresses[addressID]; ok && a.UserID == userID {
		return &a, nil
	}
	return nil, errors.New("no documents in result")
}

func (f *fakeStore) ReferencedByOrder(_ context.Context, addressID string) (bool, error) {
	return f.referenced[addressID], nil
}

func (f *fakeStore) Remove(_ context.Context, _, addressID string) error {
	f.removed = append(f.removed, addressID)
	delete(f.addresses, addressID)
	return nil
}

func TestRemoveAddressReferencedByOrder(t *testing.T) {
	store := &fakeStore{
		addresses:  map[string]models.Address{"a1": {AddressID: "a1", UserID: "u1"}},
		referenced: map[string]bool{"a1": true},
	}

	err := removeAddress(context.Background(), store, "u1", "a1")

	require.ErrorIs(t, err, errReferenced)
	assert.Empty(t, store.removed, "an address an order ships to must survive")
	assert.Contains(t, store.addresses, "a1")
}

func TestRemoveAddressUnreferenced(t *testing.T) {
	store := &fakeStore{
		addresses:  map[string]models.Address{"a1": {AddressID: "a1", UserID: "u1"}},
		referenced: map[string]bool{},
	}

	err := removeAddress(context.Background(), store, "u1", "a1")

	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, store.removed)
}

func TestRemoveAddressNotOwned(t *testing.T) {
	store := &fakeStore{
		addresses: map[string]models.Address{"a1": {AddressID: "a1", UserID: "someone-else"}},
	}

	err := removeAddress(context.Background(), store, "u1", "a1")

	require.ErrorIs(t, err, errNotFound)
	assert.Empty(t, store.removed)
}
