package pricing

import (
	"math"

	"github.com/rakapradita/go-storefront/internal/catalog"
	"github.com/rakapradita/go-storefront/internal/order"
)

// DefaultTaxRate applies when callers have no configured rate.
const DefaultTaxRate = 0.10

// Line is the minimal priced input: unit price, quantity and the chosen
// shipping tier.
type Line struct {
	PriceCents       int64
	Quantity         int
	DeliveryOptionID string
}

// OptionLookup resolves a delivery option id to its price. Misses cost zero.
type OptionLookup interface {
	Get(id string) (catalog.DeliveryOption, bool)
}

// CalculateTotals computes the monetary snapshot for a set of lines.
// Subtotal is sum(price*qty), shipping is the per-line option price (a
// missing option contributes nothing), tax is the subtotal times the rate
// rounded half up to the nearest cent. The result is order-independent and
// integral for integral inputs.
func CalculateTotals(lines []Line, options OptionLookup, taxRate float64) order.Totals {
	var subtotal, shipping int64
	for _, l := range lines {
		subtotal += l.PriceCents * int64(l.Quantity)
		if opt, ok := options.Get(l.DeliveryOptionID); ok {
			shipping += opt.PriceCents
		}
	}
	tax := int64(math.Floor(float64(subtotal)*taxRate + 0.5))
	return order.Totals{
		ItemsSubtotal: subtotal,
		ShippingTotal: shipping,
		TaxCents:      tax,
		TotalCents:    subtotal + shipping + tax,
	}
}
