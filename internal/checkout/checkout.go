package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rakapradita/go-storefront/internal/cart"
	"github.com/rakapradita/go-storefront/internal/catalog"
	"github.com/rakapradita/go-storefront/internal/order"
	"github.com/rakapradita/go-storefront/internal/pricing"
	"github.com/rakapradita/go-storefront/internal/tracking"
	"github.com/rs/zerolog"
)

var ErrEmptyCart = errors.New("cart is empty")

// Service turns the current cart into an immutable order: product data and
// chosen shipping tiers are snapshotted per line, delivery dates and totals
// computed once, and the cart cleared only after the order is stored.
type Service struct {
	cart     *cart.Cart
	orders   *order.Store
	products *catalog.Catalog
	options  *catalog.Options
	taxRate  float64
	log      zerolog.Logger

	// Now drives order and delivery dates. Overridable in tests.
	Now func() time.Time
}

func NewService(c *cart.Cart, orders *order.Store, products *catalog.Catalog, options *catalog.Options, taxRate float64, log zerolog.Logger) (*Service, error) {
	if c == nil {
		return nil, fmt.Errorf("cart required")
	}
	if orders == nil {
		return nil, fmt.Errorf("order store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product catalog required")
	}
	if options == nil {
		return nil, fmt.Errorf("delivery options required")
	}
	if taxRate < 0 {
		return nil, fmt.Errorf("tax rate must be non-negative")
	}
	return &Service{
		cart:     c,
		orders:   orders,
		products: products,
		options:  options,
		taxRate:  taxRate,
		log:      log.With().Str("component", "checkout").Logger(),
		Now:      time.Now,
	}, nil
}

// PlaceOrderInput carries the buyer details captured at checkout.
type PlaceOrderInput struct {
	ShippingAddress order.Address
	PaymentMethod   string
}

// PlaceOrder builds and stores an order from the cart's current lines.
// Unknown products abort the whole placement; an unknown delivery option on
// a line falls back to the standard tier.
func (s *Service) PlaceOrder(ctx context.Context, in PlaceOrderInput) (order.Order, error) {
	lines := s.cart.Items()
	if len(lines) == 0 {
		return order.Order{}, ErrEmptyCart
	}

	now := s.Now()
	items := make([]order.Item, 0, len(lines))
	priced := make([]pricing.Line, 0, len(lines))

	for _, line := range lines {
		product, ok := s.products.Get(line.ProductID)
		if !ok {
			return order.Order{}, fmt.Errorf("unknown product in cart: %s", line.ProductID)
		}
		opt, ok := s.options.Get(line.DeliveryOptionID)
		if !ok {
			opt = s.options.Default()
		}

		deliveryDate := now.AddDate(0, 0, opt.DeliveryDays).Format(tracking.DateLayout)
		items = append(items, order.Item{
			ProductID:        product.ID,
			ProductName:      product.Name,
			ProductImage:     product.Image,
			Quantity:         line.Quantity,
			PriceCents:       product.PriceCents,
			DeliveryOptionID: opt.ID,
			DeliveryDate:     deliveryDate,
			Status:           order.StatusPreparing,
		})
		priced = append(priced, pricing.Line{
			PriceCents:       product.PriceCents,
			Quantity:         line.Quantity,
			DeliveryOptionID: opt.ID,
		})
	}

	saved, err := s.orders.Save(ctx, order.Order{
		OrderDate:       now.UTC(),
		Items:           items,
		Totals:          pricing.CalculateTotals(priced, s.options, s.taxRate),
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
	})
	if err != nil {
		return order.Order{}, err
	}

	s.cart.Clear(ctx)
	s.log.Info().Str("order_id", saved.ID).Int64("total_cents", saved.Totals.TotalCents).Msg("order placed")
	return saved, nil
}

// BuyAgain re-adds one unit of a previously ordered item to the cart.
func (s *Service) BuyAgain(ctx context.Context, orderID, productID string) bool {
	item, err := s.orders.TrackingInfo(ctx, orderID, productID)
	if err != nil {
		s.log.Warn().Str("order_id", orderID).Str("product_id", productID).Msg("buy again failed: item not found")
		return false
	}
	return s.cart.Add(ctx, item.ProductID, 1)
}
