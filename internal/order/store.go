package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rakapradita/go-storefront/internal/storage"
	"github.com/rs/zerolog"
)

var (
	// ErrNotFound marks an expected lookup miss, never a contract violation.
	ErrNotFound = errors.New("order not found")

	// ErrInvalidOrder wraps validation failures in Save. Nothing is
	// persisted when it is returned.
	ErrInvalidOrder = errors.New("invalid order data")
)

var validate = validator.New()

// Store owns the persisted order collection under the fixed orders key.
// Every mutation is a read-modify-write of the whole collection.
type Store struct {
	backend storage.Store
	log     zerolog.Logger

	// Now is the clock used to stamp order dates. Overridable in tests.
	Now func() time.Time
}

func NewStore(backend storage.Store, log zerolog.Logger) *Store {
	return &Store{
		backend: backend,
		log:     log.With().Str("component", "orders").Logger(),
		Now:     time.Now,
	}
}

func (s *Store) loadAll(ctx context.Context) []Order {
	b, err := s.backend.Load(ctx, storage.KeyOrders)
	if err != nil {
		if err != storage.ErrNotFound {
			s.log.Warn().Err(err).Msg("orders load failed, treating as empty")
		}
		return nil
	}
	var orders []Order
	if err := json.Unmarshal(b, &orders); err != nil {
		s.log.Warn().Err(err).Msg("orders blob unreadable, treating as empty")
		return nil
	}
	return orders
}

func (s *Store) saveAll(ctx context.Context, orders []Order) error {
	b, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("marshal orders: %w", err)
	}
	return s.backend.Save(ctx, storage.KeyOrders, b)
}

// Save validates, normalizes and appends an order, returning the stored
// record. Missing IDs are generated and missing order dates stamped; items
// default to Preparing. Validation failure persists nothing.
func (s *Store) Save(ctx context.Context, o Order) (Order, error) {
	if err := validate.Struct(o); err != nil {
		return Order{}, fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = s.Now().UTC()
	}
	for i := range o.Items {
		if o.Items[i].Status == "" {
			o.Items[i].Status = StatusPreparing
		}
		if !o.Items[i].Status.Valid() {
			return Order{}, fmt.Errorf("%w: unknown status %q", ErrInvalidOrder, o.Items[i].Status)
		}
	}

	orders := append(s.loadAll(ctx), o)
	if err := s.saveAll(ctx, orders); err != nil {
		return Order{}, err
	}
	s.log.Info().Str("order_id", o.ID).Int("items", len(o.Items)).Msg("order saved")
	return o, nil
}

// Orders returns the full collection in storage order. Absent or corrupt
// storage reads as empty.
func (s *Store) Orders(ctx context.Context) []Order {
	return s.loadAll(ctx)
}

// Get returns the order with the given id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, orderID string) (Order, error) {
	for _, o := range s.loadAll(ctx) {
		if o.ID == orderID {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

// OrdersByDate returns orders newest first. Ties keep storage order.
func (s *Store) OrdersByDate(ctx context.Context) []Order {
	orders := s.loadAll(ctx)
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
	return orders
}

// UpdateItemStatus sets one item's status and persists. False when the
// order or item is missing, or the status value is unknown.
func (s *Store) UpdateItemStatus(ctx context.Context, orderID, productID string, status Status) bool {
	if !status.Valid() {
		s.log.Warn().Str("status", string(status)).Msg("status update rejected: unknown status")
		return false
	}
	orders := s.loadAll(ctx)
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		for j := range orders[i].Items {
			if orders[i].Items[j].ProductID != productID {
				continue
			}
			orders[i].Items[j].Status = status
			if err := s.saveAll(ctx, orders); err != nil {
				s.log.Error().Err(err).Str("order_id", orderID).Msg("status update save failed")
				return false
			}
			return true
		}
		return false
	}
	return false
}

// Update replaces the whole order record matching o.ID. False when no such
// order exists.
func (s *Store) Update(ctx context.Context, o Order) bool {
	if o.ID == "" {
		return false
	}
	orders := s.loadAll(ctx)
	for i := range orders {
		if orders[i].ID != o.ID {
			continue
		}
		orders[i] = o
		if err := s.saveAll(ctx, orders); err != nil {
			s.log.Error().Err(err).Str("order_id", o.ID).Msg("order update save failed")
			return false
		}
		return true
	}
	return false
}

// TrackingInfo returns the item for a product within an order.
func (s *Store) TrackingInfo(ctx context.Context, orderID, productID string) (Item, error) {
	o, err := s.Get(ctx, orderID)
	if err != nil {
		return Item{}, err
	}
	for _, item := range o.Items {
		if item.ProductID == productID {
			return item, nil
		}
	}
	return Item{}, ErrNotFound
}

// Clear removes every order. Administrative use only.
func (s *Store) Clear(ctx context.Context) error {
	return s.backend.Delete(ctx, storage.KeyOrders)
}
