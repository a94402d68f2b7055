package pricing

import (
	"testing"

	"github.com/rakapradita/go-storefront/internal/catalog"
	"github.com/rakapradita/go-storefront/internal/order"
	"github.com/stretchr/testify/require"
)

func testOptions() *catalog.Options {
	return catalog.NewOptions([]catalog.DeliveryOption{
		{ID: "1", DeliveryDays: 7, PriceCents: 0},
		{ID: "2", DeliveryDays: 3, PriceCents: 499},
	})
}

func TestCalculateTotalsWorkedExample(t *testing.T) {
	t.Parallel()

	lines := []Line{{PriceCents: 1000, Quantity: 2, DeliveryOptionID: "1"}}
	got := CalculateTotals(lines, testOptions(), 0.1)

	require.Equal(t, order.Totals{
		ItemsSubtotal: 2000,
		ShippingTotal: 0,
		TaxCents:      200,
		TotalCents:    2200,
	}, got)
}

func TestCalculateTotalsIsOrderIndependent(t *testing.T) {
	t.Parallel()

	lines := []Line{
		{PriceCents: 1090, Quantity: 3, DeliveryOptionID: "2"},
		{PriceCents: 2095, Quantity: 1, DeliveryOptionID: "1"},
		{PriceCents: 799, Quantity: 2, DeliveryOptionID: "2"},
	}
	reversed := []Line{lines[2], lines[1], lines[0]}

	require.Equal(t,
		CalculateTotals(lines, testOptions(), DefaultTaxRate),
		CalculateTotals(reversed, testOptions(), DefaultTaxRate),
	)
}

func TestCalculateTotalsMissingOptionCostsNothing(t *testing.T) {
	t.Parallel()

	lines := []Line{{PriceCents: 500, Quantity: 1, DeliveryOptionID: "unknown"}}
	got := CalculateTotals(lines, testOptions(), 0.1)

	require.Equal(t, int64(0), got.ShippingTotal)
	require.Equal(t, int64(500), got.ItemsSubtotal)
	require.Equal(t, int64(550), got.TotalCents)
}

func TestTaxRoundsHalfUp(t *testing.T) {
	t.Parallel()

	// subtotal 15 * 0.1 = 1.5 cents -> rounds to 2
	lines := []Line{{PriceCents: 15, Quantity: 1, DeliveryOptionID: "1"}}
	got := CalculateTotals(lines, testOptions(), 0.1)
	require.Equal(t, int64(2), got.TaxCents)

	// subtotal 14 * 0.1 = 1.4 cents -> rounds to 1
	lines[0].PriceCents = 14
	got = CalculateTotals(lines, testOptions(), 0.1)
	require.Equal(t, int64(1), got.TaxCents)
}

func TestEmptyLines(t *testing.T) {
	t.Parallel()

	got := CalculateTotals(nil, testOptions(), DefaultTaxRate)
	require.Equal(t, order.Totals{}, got)
}
