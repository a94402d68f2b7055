package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	s := NewFileStore(t.TempDir())
	ctx := context.Background()

	_, err := s.Load(ctx, KeyCart)
	require.ErrorIs(t, err, ErrNotFound)

	blob := []byte(`[{"productId":"p1","quantity":2,"deliveryOptionId":"1"}]`)
	require.NoError(t, s.Save(ctx, KeyCart, blob))

	got, err := s.Load(ctx, KeyCart)
	require.NoError(t, err)
	require.Equal(t, blob, got)

	require.NoError(t, s.Delete(ctx, KeyCart))
	_, err = s.Load(ctx, KeyCart)
	require.ErrorIs(t, err, ErrNotFound)

	// deleting an absent key stays a no-op
	require.NoError(t, s.Delete(ctx, KeyCart))
}

func TestMemoryIsolatesCallers(t *testing.T) {
	t.Parallel()

	s := NewMemory()
	ctx := context.Background()

	blob := []byte(`{"a":1}`)
	require.NoError(t, s.Save(ctx, KeyOrders, blob))

	got, err := s.Load(ctx, KeyOrders)
	require.NoError(t, err)
	got[0] = 'X'

	again, err := s.Load(ctx, KeyOrders)
	require.NoError(t, err)
	require.Equal(t, blob, again)
}

func TestRedisBackend(t *testing.T) {
	t.Parallel()

	srv := miniredis.RunT(t)
	s := NewRedis(srv.Addr())
	defer s.Close()
	ctx := context.Background()

	_, err := s.Load(ctx, KeyOrders)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Save(ctx, KeyOrders, []byte(`[]`)))
	got, err := s.Load(ctx, KeyOrders)
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), got)

	require.NoError(t, s.Delete(ctx, KeyOrders))
	_, err = s.Load(ctx, KeyOrders)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOpenUnknownBackend(t *testing.T) {
	t.Parallel()

	_, err := Open("bolt", "", "")
	require.Error(t, err)
}
