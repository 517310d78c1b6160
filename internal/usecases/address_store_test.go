package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sportmart.client/internal/domain/entities"
	domainerrors "sportmart.client/internal/domain/errors"
	"sportmart.client/internal/usecases"
)

func homeAddress(name string, primary bool, createdAt time.Time) *entities.AddressRecord {
	return &entities.AddressRecord{
		ID:          uuid.New(),
		ContactName: name,
		Type:        entities.AddressTypeHome,
		IsPrimary:   primary,
		CreatedAt:   createdAt,
	}
}

func storeAddress(name string, createdAt time.Time) *entities.AddressRecord {
	return &entities.AddressRecord{
		ID:          uuid.New(),
		ContactName: name,
		Type:        entities.AddressTypeStore,
		CreatedAt:   createdAt,
	}
}

func TestNormalizeAddressesKeepsSinglePrimary(t *testing.T) {
	now := time.Now()
	a := homeAddress("a", true, now.Add(-2*time.Hour))
	b := homeAddress("b", true, now.Add(-1*time.Hour))
	c := homeAddress("c", false, now)

	out := usecases.NormalizeAddresses([]*entities.AddressRecord{a, b, c}, nil, uuid.Nil)

	require.Len(t, out, 3)
	primaries := 0
	for _, r := range out {
		if r.IsPrimary {
			primaries++
			assert.Equal(t, a.ID, r.ID, "first primary in input order wins")
		}
	}
	assert.Equal(t, 1, primaries)
	assert.True(t, out[0].IsPrimary, "primary sorts first")
}

func TestNormalizeAddressesForcedPrimary(t *testing.T) {
	now := time.Now()
	a := homeAddress("a", true, now.Add(-1*time.Hour))
	b := homeAddress("b", false, now)

	out := usecases.NormalizeAddresses([]*entities.AddressRecord{a, b}, nil, b.ID)

	require.Len(t, out, 2)
	assert.Equal(t, b.ID, out[0].ID)
	assert.True(t, out[0].IsPrimary)
	assert.False(t, out[1].IsPrimary)
}

func TestNormalizeAddressesDropsExcludedTypes(t *testing.T) {
	now := time.Now()
	home := homeAddress("home", false, now)
	store := storeAddress("store", now)

	out := usecases.NormalizeAddresses(
		[]*entities.AddressRecord{home, store},
		[]entities.AddressType{entities.AddressTypeStore},
		uuid.Nil,
	)

	require.Len(t, out, 1)
	assert.Equal(t, home.ID, out[0].ID)
}

func TestNormalizeAddressesClearsStorePrimaryFlag(t *testing.T) {
	store := storeAddress("store", time.Now())
	store.IsPrimary = true

	out := usecases.NormalizeAddresses([]*entities.AddressRecord{store}, nil, uuid.Nil)

	require.Len(t, out, 1)
	assert.False(t, out[0].IsPrimary)
}

func TestNormalizeAddressesSortsNewestFirst(t *testing.T) {
	now := time.Now()
	old := homeAddress("old", false, now.Add(-3*time.Hour))
	newer := homeAddress("newer", false, now)

	out := usecases.NormalizeAddresses([]*entities.AddressRecord{old, newer}, nil, uuid.Nil)

	require.Len(t, out, 2)
	assert.Equal(t, newer.ID, out[0].ID)
}

func TestNormalizeAddressesDoesNotMutateInput(t *testing.T) {
	a := homeAddress("a", true, time.Now())
	b := homeAddress("b", true, time.Now())

	usecases.NormalizeAddresses([]*entities.AddressRecord{a, b}, nil, uuid.Nil)

	assert.True(t, a.IsPrimary)
	assert.True(t, b.IsPrimary, "input records are copied, not mutated")
}

func TestAddressStoreFetchNormalizes(t *testing.T) {
	gw := new(MockAddressGateway)
	now := time.Now()
	a := homeAddress("a", true, now.Add(-1*time.Hour))
	b := homeAddress("b", true, now)
	gw.On("List", mock.Anything, mock.Anything).Return([]*entities.AddressRecord{a, b}, nil)

	store := usecases.NewAddressStore(gw, nil)
	records, err := store.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	primaries := 0
	for _, r := range records {
		if r.IsPrimary {
			primaries++
		}
	}
	assert.Equal(t, 1, primaries)
	assert.Empty(t, store.ErrorMessage())
	gw.AssertExpectations(t)
}

func TestAddressStoreFetchErrorClearsList(t *testing.T) {
	gw := new(MockAddressGateway)
	gw.On("List", mock.Anything, mock.Anything).Return(nil, domainerrors.Network(assert.AnError))

	store := usecases.NewAddressStore(gw, nil)
	records, err := store.Fetch(context.Background())

	require.Error(t, err)
	assert.Nil(t, records)
	assert.Empty(t, store.Records())
	assert.NotEmpty(t, store.ErrorMessage())
}

func TestAddressStoreCreatePrimaryDemotesOthers(t *testing.T) {
	gw := new(MockAddressGateway)
	now := time.Now()
	existing := homeAddress("existing", true, now.Add(-1*time.Hour))
	gw.On("List", mock.Anything, mock.Anything).Return([]*entities.AddressRecord{existing}, nil)

	created := homeAddress("created", true, now)
	gw.On("Create", mock.Anything, mock.Anything).Return(created, nil)

	store := usecases.NewAddressStore(gw, nil)
	_, err := store.Fetch(context.Background())
	require.NoError(t, err)

	_, err = store.Create(context.Background(), &entities.AddressDraft{
		RecipientName: "created",
		PhoneNumber:   "0912345678",
		IsPrimary:     true,
	})
	require.NoError(t, err)

	records := store.Records()
	require.Len(t, records, 2)
	assert.Equal(t, created.ID, records[0].ID)
	assert.True(t, records[0].IsPrimary)
	assert.False(t, records[1].IsPrimary)
}

func TestAddressStoreDeleteStoreAddressForbidden(t *testing.T) {
	gw := new(MockAddressGateway)
	shop := storeAddress("shop", time.Now())
	gw.On("List", mock.Anything, mock.Anything).Return([]*entities.AddressRecord{shop}, nil)

	store := usecases.NewAddressStore(gw, nil)
	_, err := store.Fetch(context.Background())
	require.NoError(t, err)

	err = store.Delete(context.Background(), shop.ID)
	require.Error(t, err)
	assert.Equal(t, 403, domainerrors.StatusCode(err))
	gw.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAddressStoreDeleteDeclinedIsNoop(t *testing.T) {
	gw := new(MockAddressGateway)
	home := homeAddress("home", false, time.Now())
	gw.On("List", mock.Anything, mock.Anything).Return([]*entities.AddressRecord{home}, nil)

	decline := func(string) bool { return false }
	store := usecases.NewAddressStore(gw, decline)
	_, err := store.Fetch(context.Background())
	require.NoError(t, err)

	err = store.Delete(context.Background(), home.ID)
	require.NoError(t, err)
	assert.Len(t, store.Records(), 1)
	gw.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAddressStoreDelete404IsSoftSuccess(t *testing.T) {
	gw := new(MockAddressGateway)
	home := homeAddress("home", false, time.Now())
	gw.On("List", mock.Anything, mock.Anything).Return([]*entities.AddressRecord{home}, nil).Once()
	gw.On("Delete", mock.Anything, home.ID).Return(domainerrors.NotFound("address not found"))
	// The 404 path refreshes from the backend.
	gw.On("List", mock.Anything, mock.Anything).Return([]*entities.AddressRecord{}, nil).Once()

	store := usecases.NewAddressStore(gw, nil)
	_, err := store.Fetch(context.Background())
	require.NoError(t, err)

	err = store.Delete(context.Background(), home.ID)
	require.NoError(t, err)
	assert.Empty(t, store.Records())
	gw.AssertExpectations(t)
}

func TestAddressStoreDeleteRemovesRecord(t *testing.T) {
	gw := new(MockAddressGateway)
	now := time.Now()
	keep := homeAddress("keep", true, now.Add(-1*time.Hour))
	gone := homeAddress("gone", false, now)
	gw.On("List", mock.Anything, mock.Anything).Return([]*entities.AddressRecord{keep, gone}, nil)
	gw.On("Delete", mock.Anything, gone.ID).Return(nil)

	store := usecases.NewAddressStore(gw, nil)
	_, err := store.Fetch(context.Background())
	require.NoError(t, err)

	err = store.Delete(context.Background(), gone.ID)
	require.NoError(t, err)

	records := store.Records()
	require.Len(t, records, 1)
	assert.Equal(t, keep.ID, records[0].ID)
}

func TestAddressStoreSetPrimaryRenormalizes(t *testing.T) {
	gw := new(MockAddressGateway)
	now := time.Now()
	a := homeAddress("a", true, now.Add(-1*time.Hour))
	b := homeAddress("b", false, now)
	gw.On("List", mock.Anything, mock.Anything).Return([]*entities.AddressRecord{a, b}, nil)

	updated := *b
	updated.IsPrimary = true
	gw.On("SetPrimary", mock.Anything, b.ID).Return(&updated, nil)

	store := usecases.NewAddressStore(gw, nil)
	_, err := store.Fetch(context.Background())
	require.NoError(t, err)

	require.NoError(t, store.SetPrimary(context.Background(), b.ID))

	records := store.Records()
	require.Len(t, records, 2)
	assert.Equal(t, b.ID, records[0].ID)
	assert.True(t, records[0].IsPrimary)
	assert.False(t, records[1].IsPrimary)
}

func TestAddressStoreFetchKeepsExclusionForMutations(t *testing.T) {
	gw := new(MockAddressGateway)
	now := time.Now()
	home := homeAddress("home", false, now)
	gw.On("List", mock.Anything, []entities.AddressType{entities.AddressTypeStore}).
		Return([]*entities.AddressRecord{home}, nil)

	// The created record comes back alongside a STORE record type; the
	// remembered exclusion keeps it out of the cache.
	created := storeAddress("shop", now)
	gw.On("Create", mock.Anything, mock.Anything).Return(created, nil)

	store := usecases.NewAddressStore(gw, nil)
	_, err := store.Fetch(context.Background(), entities.AddressTypeStore)
	require.NoError(t, err)

	_, err = store.Create(context.Background(), &entities.AddressDraft{RecipientName: "shop"})
	require.NoError(t, err)

	for _, r := range store.Records() {
		assert.NotEqual(t, entities.AddressTypeStore, r.Type)
	}
}
