package cart

import (
	"context"
	"testing"

	"github.com/rakapradita/go-storefront/internal/catalog"
	"github.com/rakapradita/go-storefront/internal/storage"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestCart(t *testing.T) (*Cart, storage.Store) {
	t.Helper()
	backend := storage.NewMemory()
	opts := catalog.NewOptions(catalog.BuiltinDeliveryOptions())
	return New(context.Background(), storage.KeyCart, backend, opts, zerolog.Nop()), backend
}

func TestAddMergesSameProduct(t *testing.T) {
	t.Parallel()

	c, _ := newTestCart(t)
	ctx := context.Background()

	require.True(t, c.Add(ctx, "p1", 1))
	require.True(t, c.Add(ctx, "p1", 2))
	require.True(t, c.Add(ctx, "p2", 1))
	require.True(t, c.Add(ctx, "p1", 3))

	items := c.Items()
	require.Len(t, items, 2)
	require.Equal(t, "p1", items[0].ProductID)
	require.Equal(t, 6, items[0].Quantity)
	require.Equal(t, "1", items[0].DeliveryOptionID) // default option
	require.Equal(t, 7, c.TotalQuantity())
}

func TestAddRejectsBadInput(t *testing.T) {
	t.Parallel()

	c, _ := newTestCart(t)
	ctx := context.Background()

	require.False(t, c.Add(ctx, "", 1))
	require.False(t, c.Add(ctx, "p1", 0))
	require.False(t, c.Add(ctx, "p1", -3))
	require.True(t, c.IsEmpty())
}

func TestRemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	c, _ := newTestCart(t)
	ctx := context.Background()

	c.Add(ctx, "p1", 2)
	require.True(t, c.Remove(ctx, "p1"))
	require.False(t, c.Remove(ctx, "p1"))
	require.False(t, c.Remove(ctx, "p1"))
	require.True(t, c.IsEmpty())
}

func TestUpdateQuantityZeroActsAsRemove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	for _, qty := range []int{0, -5} {
		c, _ := newTestCart(t)
		c.Add(ctx, "p1", 4)
		c.UpdateQuantity(ctx, "p1", qty)
		require.True(t, c.IsEmpty(), "quantity %d should remove the line", qty)
	}
}

func TestUpdateQuantityBounds(t *testing.T) {
	t.Parallel()

	c, _ := newTestCart(t)
	ctx := context.Background()

	c.Add(ctx, "p1", 1)
	require.True(t, c.UpdateQuantity(ctx, "p1", 1000))
	require.Equal(t, 1000, c.TotalQuantity())
	require.False(t, c.UpdateQuantity(ctx, "p1", 1001))
	require.Equal(t, 1000, c.TotalQuantity())
	require.False(t, c.UpdateQuantity(ctx, "missing", 5))
}

func TestUpdateDeliveryOption(t *testing.T) {
	t.Parallel()

	c, _ := newTestCart(t)
	ctx := context.Background()

	c.Add(ctx, "p1", 1)
	require.True(t, c.UpdateDeliveryOption(ctx, "p1", "3"))
	require.Equal(t, "3", c.Items()[0].DeliveryOptionID)

	require.False(t, c.UpdateDeliveryOption(ctx, "p1", "99"))
	require.False(t, c.UpdateDeliveryOption(ctx, "missing", "2"))
	require.Equal(t, "3", c.Items()[0].DeliveryOptionID)
}

func TestReloadRoundTrip(t *testing.T) {
	t.Parallel()

	backend := storage.NewFileStore(t.TempDir())
	opts := catalog.NewOptions(catalog.BuiltinDeliveryOptions())
	ctx := context.Background()

	c := New(ctx, storage.KeyCart, backend, opts, zerolog.Nop())
	c.Add(ctx, "p1", 2)
	c.Add(ctx, "p2", 1)
	c.UpdateDeliveryOption(ctx, "p2", "2")

	reloaded := New(ctx, storage.KeyCart, backend, opts, zerolog.Nop())
	require.Equal(t, c.Items(), reloaded.Items())
}

func TestIndependentCartKeys(t *testing.T) {
	t.Parallel()

	backend := storage.NewMemory()
	opts := catalog.NewOptions(catalog.BuiltinDeliveryOptions())
	ctx := context.Background()

	personal := New(ctx, storage.KeyCart, backend, opts, zerolog.Nop())
	business := New(ctx, storage.KeyCartBusiness, backend, opts, zerolog.Nop())

	personal.Add(ctx, "p1", 1)
	business.Add(ctx, "p2", 5)

	require.Equal(t, 1, personal.TotalQuantity())
	require.Equal(t, 5, business.TotalQuantity())
	require.Len(t, business.Items(), 1)
	require.Equal(t, "p2", business.Items()[0].ProductID)
}

func TestCorruptBlobStartsEmpty(t *testing.T) {
	t.Parallel()

	backend := storage.NewMemory()
	ctx := context.Background()
	require.NoError(t, backend.Save(ctx, storage.KeyCart, []byte("{not json")))

	opts := catalog.NewOptions(catalog.BuiltinDeliveryOptions())
	c := New(ctx, storage.KeyCart, backend, opts, zerolog.Nop())
	require.True(t, c.IsEmpty())
	require.True(t, c.Add(ctx, "p1", 1))
}
