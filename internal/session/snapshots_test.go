package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemorySnapshotsLoadEmptyReturnsDefault(t *testing.T) {
	snapshots := NewMemorySnapshots()

	state, err := snapshots.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, state.User)
	require.False(t, state.IsAuthenticated)
	require.NotNil(t, state.CartItems)
	require.NotNil(t, state.WishlistItems)
	require.NotNil(t, state.Orders)
}

func TestMemorySnapshotsRoundTrip(t *testing.T) {
	snapshots := NewMemorySnapshots()
	ctx := context.Background()

	saved := DefaultState()
	saved.IsAuthenticated = true
	saved.User = &User{ID: "1", Email: "a@b.c", Addresses: []Address{}}
	saved.CartItems = []CartItem{{ProductID: 3, Quantity: 2, AddedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}}

	require.NoError(t, snapshots.Save(ctx, saved))

	loaded, err := snapshots.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, saved, loaded)
}

func TestDecodeSnapshotFallsBackOnGarbage(t *testing.T) {
	state := decodeSnapshot(context.Background(), []byte("{not json"), nil)
	require.Equal(t, DefaultState(), state)
}

func TestDecodeSnapshotNormalizesNilCollections(t *testing.T) {
	state := decodeSnapshot(context.Background(), []byte(`{"user":{"id":"1"},"isAuthenticated":true}`), nil)
	require.True(t, state.IsAuthenticated)
	require.NotNil(t, state.CartItems)
	require.NotNil(t, state.WishlistItems)
	require.NotNil(t, state.Orders)
	require.NotNil(t, state.User.Addresses)
}
