package cart

import (
	"context"
	"testing"

	"food-delivery/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreMissingKeyReturnsEmptySession(t *testing.T) {
	store := NewMemoryStore()
	s, err := store.Get(context.Background(), "nobody:nowhere")
	require.NoError(t, err)
	assert.True(t, s.Cart.IsEmpty())
	assert.False(t, s.HasLocation())
	assert.Zero(t, s.DeliveryFee())
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	key := SessionKey("user1", "rest1")

	s := &Session{RestaurantID: "rest1"}
	s.Cart.AddItem("a", "Burger Deluxe", 12.99)
	s.Location = &delivery.LatLng{Lat: 40.7128, Lng: -74.0060}
	s.Estimate = &delivery.Estimate{DistanceKm: 2.5, Minutes: 30, Fee: 6.75}
	require.NoError(t, store.Save(ctx, key, s))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.Len(t, got.Cart.Lines, 1)
	assert.Equal(t, "Burger Deluxe", got.Cart.Lines[0].Name)
	require.NotNil(t, got.Location)
	assert.Equal(t, 40.7128, got.Location.Lat)
	assert.Equal(t, 6.75, got.DeliveryFee())
	assert.False(t, got.UpdatedAt.IsZero())
}

// A session read from the store must not alias the stored state; mutating it
// without saving leaves the stored session untouched.
func TestMemoryStoreGetDoesNotAlias(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	key := SessionKey("user1", "rest1")

	s := &Session{}
	s.Cart.AddItem("a", "Burger Deluxe", 12.99)
	require.NoError(t, store.Save(ctx, key, s))

	first, err := store.Get(ctx, key)
	require.NoError(t, err)
	first.Cart.ChangeQuantity("a", -1)

	second, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.Len(t, second.Cart.Lines, 1)
	assert.Equal(t, 1, second.Cart.Lines[0].Quantity)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	key := SessionKey("user1", "rest1")

	s := &Session{}
	s.Cart.AddItem("a", "Burger Deluxe", 12.99)
	require.NoError(t, store.Save(ctx, key, s))
	require.NoError(t, store.Delete(ctx, key))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, got.Cart.IsEmpty())
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "u1:r9", SessionKey("u1", "r9"))
}
