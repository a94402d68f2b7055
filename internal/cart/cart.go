package cart

import (
	"context"
	"encoding/json"

	"github.com/rakapradita/go-storefront/internal/catalog"
	"github.com/rakapradita/go-storefront/internal/storage"
	"github.com/rs/zerolog"
)

// Quantity updates above this bound are rejected.
const maxLineQuantity = 1000

type LineItem struct {
	ProductID        string `json:"productId"`
	Quantity         int    `json:"quantity"`
	DeliveryOptionID string `json:"deliveryOptionId"`
}

// Cart owns one persisted line-item collection, identified by its storage
// key. Every mutation rewrites the whole collection. Expected failures
// (unknown product, bad quantity) return false and log; they never panic.
type Cart struct {
	key     string
	items   []LineItem
	backend storage.Store
	options *catalog.Options
	log     zerolog.Logger
}

// New loads the cart stored under key. An absent or unreadable blob starts
// the cart empty rather than failing the session.
func New(ctx context.Context, key string, backend storage.Store, options *catalog.Options, log zerolog.Logger) *Cart {
	c := &Cart{
		key:     key,
		backend: backend,
		options: options,
		log:     log.With().Str("cart", key).Logger(),
	}
	c.load(ctx)
	return c
}

func (c *Cart) load(ctx context.Context) {
	b, err := c.backend.Load(ctx, c.key)
	if err != nil {
		if err != storage.ErrNotFound {
			c.log.Warn().Err(err).Msg("cart load failed, starting empty")
		}
		c.items = nil
		return
	}
	var items []LineItem
	if err := json.Unmarshal(b, &items); err != nil {
		c.log.Warn().Err(err).Msg("cart blob unreadable, starting empty")
		c.items = nil
		return
	}
	c.items = items
}

func (c *Cart) persist(ctx context.Context) bool {
	b, err := json.Marshal(c.items)
	if err != nil {
		c.log.Error().Err(err).Msg("cart marshal failed")
		return false
	}
	if err := c.backend.Save(ctx, c.key, b); err != nil {
		c.log.Error().Err(err).Msg("cart save failed")
		return false
	}
	return true
}

func (c *Cart) find(productID string) *LineItem {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return &c.items[i]
		}
	}
	return nil
}

// Add merges quantity into an existing line for the product, or appends a
// new line with the default delivery option. At most one line exists per
// product id.
func (c *Cart) Add(ctx context.Context, productID string, quantity int) bool {
	if productID == "" {
		c.log.Warn().Msg("add rejected: empty product id")
		return false
	}
	if quantity <= 0 {
		c.log.Warn().Str("product_id", productID).Int("quantity", quantity).Msg("add rejected: quantity must be positive")
		return false
	}

	if item := c.find(productID); item != nil {
		item.Quantity += quantity
	} else {
		c.items = append(c.items, LineItem{
			ProductID:        productID,
			Quantity:         quantity,
			DeliveryOptionID: c.options.Default().ID,
		})
	}
	return c.persist(ctx)
}

// Remove drops the line for the product. Removing an absent product is a
// no-op and does not rewrite storage.
func (c *Cart) Remove(ctx context.Context, productID string) bool {
	kept := c.items[:0]
	removed := false
	for _, item := range c.items {
		if item.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return false
	}
	c.items = kept
	return c.persist(ctx)
}

// UpdateQuantity sets the line's quantity directly. A quantity of zero or
// less removes the line instead of persisting a non-positive value.
func (c *Cart) UpdateQuantity(ctx context.Context, productID string, quantity int) bool {
	if productID == "" {
		c.log.Warn().Msg("quantity update rejected: empty product id")
		return false
	}
	if quantity <= 0 {
		return c.Remove(ctx, productID)
	}
	if quantity > maxLineQuantity {
		c.log.Warn().Str("product_id", productID).Int("quantity", quantity).Msg("quantity update rejected: above bound")
		return false
	}
	item := c.find(productID)
	if item == nil {
		c.log.Warn().Str("product_id", productID).Msg("quantity update failed: product not in cart")
		return false
	}
	item.Quantity = quantity
	return c.persist(ctx)
}

// UpdateDeliveryOption switches the line to another shipping tier. Both the
// line and the option must exist.
func (c *Cart) UpdateDeliveryOption(ctx context.Context, productID, deliveryOptionID string) bool {
	if _, ok := c.options.Get(deliveryOptionID); !ok {
		c.log.Warn().Str("delivery_option_id", deliveryOptionID).Msg("delivery option update failed: unknown option")
		return false
	}
	item := c.find(productID)
	if item == nil {
		c.log.Warn().Str("product_id", productID).Msg("delivery option update failed: product not in cart")
		return false
	}
	item.DeliveryOptionID = deliveryOptionID
	return c.persist(ctx)
}

// Clear empties the cart and persists the empty collection.
func (c *Cart) Clear(ctx context.Context) {
	c.items = nil
	c.persist(ctx)
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalQuantity sums quantities across all lines.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }
