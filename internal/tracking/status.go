package tracking

import (
	"time"

	"github.com/rakapradita/go-storefront/internal/order"
)

// DateLayout is the display format delivery dates are stored in,
// e.g. "June 8, 2026".
const DateLayout = "January 2, 2006"

// DeriveStatus computes an item's fulfillment stage from the order date, the
// promised delivery date and the current time, at day granularity:
//
//   - delivery day reached ("today or later") -> Delivered
//   - at least one full day since ordering    -> Shipped
//   - otherwise                               -> Preparing
//
// The result only ever moves forward for fixed inputs as time passes.
func DeriveStatus(orderDate, deliveryDate, now time.Time) order.Status {
	today := startOfDay(now)
	if !deliveryDate.IsZero() && !today.Before(startOfDay(deliveryDate)) {
		return order.StatusDelivered
	}
	if today.Sub(startOfDay(orderDate)) >= 24*time.Hour {
		return order.StatusShipped
	}
	return order.StatusPreparing
}

// ParseDeliveryDate reads a stored delivery-date string. Unparseable or
// empty strings report false; callers treat those items as not yet
// deliverable rather than failing.
func ParseDeliveryDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
