package tracking

import (
	"context"
	"sync"
	"time"

	"github.com/rakapradita/go-storefront/internal/order"
	"github.com/rs/zerolog"
)

// ArchiveFunc runs when a delivered item passes its archival deadline.
type ArchiveFunc func(orderID, productID string)

// archiveAfter is how long a delivered item stays in tracking.
const archiveAfter = 7 * 24 * time.Hour

// Monitor periodically re-derives item statuses from the clock and persists
// forward transitions. Reaching Delivered arms a best-effort archival timer
// for seven days past the delivery date. The monitor owns its timers, so
// cancelling the context or calling Close releases them all; duplicate
// sweeps and timer firings are no-ops.
type Monitor struct {
	store    *order.Store
	interval time.Duration
	log      zerolog.Logger

	// Archive is invoked when an archival timer fires. Defaults to logging.
	Archive ArchiveFunc
	// Now is the clock used for derivation. Overridable in tests.
	Now func() time.Time

	mu       sync.Mutex
	timers   map[string]*time.Timer
	archived map[string]bool

	quit      chan struct{}
	closeCh   chan struct{}
	closeOnce sync.Once
}

func NewMonitor(store *order.Store, interval time.Duration, log zerolog.Logger) *Monitor {
	m := &Monitor{
		store:    store,
		interval: interval,
		log:      log.With().Str("component", "tracking").Logger(),
		Now:      time.Now,
		timers:   make(map[string]*time.Timer),
		archived: make(map[string]bool),
		quit:     make(chan struct{}),
		closeCh:  make(chan struct{}),
	}
	m.Archive = func(orderID, productID string) {
		m.log.Info().Str("order_id", orderID).Str("product_id", productID).Msg("delivered item past archival window")
	}
	return m
}

// Start runs the sweep loop until the context is cancelled or Close is
// called. An immediate sweep runs before the first tick.
func (m *Monitor) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		m.Sweep(ctx)
		for {
			select {
			case <-ctx.Done():
				m.shutdown()
				return
			case <-m.quit:
				m.shutdown()
				return
			case <-ticker.C:
				m.Sweep(ctx)
			}
		}
	}()
}

// Close signals the loop to stop. Safe to call more than once.
func (m *Monitor) Close() {
	m.closeOnce.Do(func() { close(m.quit) })
}

// WaitClosed blocks until the loop has stopped and timers are released.
func (m *Monitor) WaitClosed() { <-m.closeCh }

func (m *Monitor) shutdown() {
	m.mu.Lock()
	for key, t := range m.timers {
		t.Stop()
		delete(m.timers, key)
	}
	m.mu.Unlock()
	close(m.closeCh)
}

// Sweep re-derives every item's status once. Also usable on demand, e.g. by
// the CLI before rendering tracking info.
func (m *Monitor) Sweep(ctx context.Context) {
	now := m.Now()
	for _, o := range m.store.Orders(ctx) {
		for _, item := range o.Items {
			deliveryDate, _ := ParseDeliveryDate(item.DeliveryDate)
			derived := DeriveStatus(o.OrderDate, deliveryDate, now)

			if derived != item.Status && order.CanTransition(item.Status, derived) {
				if m.store.UpdateItemStatus(ctx, o.ID, item.ProductID, derived) {
					m.log.Info().
						Str("order_id", o.ID).
						Str("product_id", item.ProductID).
						Str("from", string(item.Status)).
						Str("to", string(derived)).
						Msg("item status advanced")
				}
			}

			if derived == order.StatusDelivered && !deliveryDate.IsZero() {
				m.scheduleArchive(o.ID, item.ProductID, deliveryDate)
			}
		}
	}
}

func (m *Monitor) scheduleArchive(orderID, productID string, deliveryDate time.Time) {
	key := orderID + "/" + productID

	m.mu.Lock()
	if m.archived[key] || m.timers[key] != nil {
		m.mu.Unlock()
		return
	}
	delay := deliveryDate.Add(archiveAfter).Sub(m.Now())
	if delay <= 0 {
		m.archived[key] = true
		m.mu.Unlock()
		m.Archive(orderID, productID)
		return
	}
	m.timers[key] = time.AfterFunc(delay, func() {
		m.mu.Lock()
		delete(m.timers, key)
		m.archived[key] = true
		m.mu.Unlock()
		m.Archive(orderID, productID)
	})
	m.mu.Unlock()
}
