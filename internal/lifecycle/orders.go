// Package lifecycle creates order and appointment records from checkout
// and booking input and governs their status transitions. Records are
// immutable snapshots: status changes only append to the history.
package lifecycle

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"wolkecarwash/internal/catalog"
	"wolkecarwash/internal/ids"
	"wolkecarwash/internal/models"
	"wolkecarwash/internal/store"
)

var (
	// ErrNotFound is returned when an order or appointment id is unknown.
	ErrNotFound = errors.New("lifecycle: not found")

	// ErrInvalidTransition is returned when a status change would leave
	// the forward-only state machine, e.g. reviving a cancelled order.
	ErrInvalidTransition = errors.New("lifecycle: invalid status transition")
)

// Orders manages the carwash_orders collection.
type Orders struct {
	store   store.Store
	catalog *catalog.Service
	logger  *zap.Logger

	mu     sync.Mutex
	orders []models.Order
}

// NewOrders loads the order collection from the store. The catalog is
// needed for the stock decrement on delivery.
func NewOrders(s store.Store, cat *catalog.Service, logger *zap.Logger) *Orders {
	return &Orders{
		store:   s,
		catalog: cat,
		logger:  logger,
		orders:  store.LoadOr(s, logger, store.KeyOrders, []models.Order{}),
	}
}

func (o *Orders) save() error {
	if err := o.store.Save(store.KeyOrders, o.orders); err != nil {
		return fmt.Errorf("saving orders: %w", err)
	}
	return nil
}

// Create builds a pending order from the given cart lines and prepends
// it to the collection (most recent first). It returns the new order id.
func (o *Orders) Create(items []models.CartItem, customer models.OrderCustomer, totalAmount float64) (string, error) {
	now := time.Now()
	order := models.Order{
		ID:           ids.New("order"),
		Items:        append([]models.CartItem(nil), items...),
		CustomerInfo: customer,
		TotalAmount:  totalAmount,
		Status:       models.OrderPending,
		CreatedAt:    now,
		UpdatedAt:    now,
		StatusHistory: []models.StatusEntry{
			{Status: string(models.OrderPending), Date: now, Note: "order created"},
		},
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.orders = append([]models.Order{order}, o.orders...)
	if err := o.save(); err != nil {
		return "", err
	}

	o.logger.Info("order created",
		zap.String("id", order.ID),
		zap.Float64("total", order.TotalAmount),
		zap.Int("lines", len(order.Items)))
	return order.ID, nil
}

// UpdateStatus moves an order to the next status, appending a history
// entry. Illegal transitions (including repeating the current status)
// are rejected with ErrInvalidTransition.
//
// Transitioning into delivered decrements the stock of every referenced
// product by the ordered quantity, floored at zero. The transition rules
// make delivery reachable exactly once, so the decrement cannot fire
// twice for the same order.
func (o *Orders) UpdateStatus(id string, next models.OrderStatus, note string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	idx := -1
	for i := range o.orders {
		if o.orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("order %q: %w", id, ErrNotFound)
	}

	current := o.orders[idx].Status
	if !current.CanTransition(next) {
		return fmt.Errorf("order %q: %s -> %s: %w", id, current, next, ErrInvalidTransition)
	}

	if next == models.OrderDelivered && current != models.OrderDelivered {
		o.decrementStock(o.orders[idx].Items)
	}

	if note == "" {
		note = fmt.Sprintf("status updated to %s", next)
	}
	now := time.Now()
	o.orders[idx].Status = next
	o.orders[idx].UpdatedAt = now
	o.orders[idx].StatusHistory = append(o.orders[idx].StatusHistory, models.StatusEntry{
		Status: string(next),
		Date:   now,
		Note:   note,
	})

	if err := o.save(); err != nil {
		return err
	}

	o.logger.Info("order status updated",
		zap.String("id", id),
		zap.String("from", string(current)),
		zap.String("to", string(next)))
	return nil
}

func (o *Orders) decrementStock(items []models.CartItem) {
	for _, item := range items {
		if item.Kind == models.KindPackage {
			continue
		}
		if err := o.catalog.DecrementStock(item.ID, item.Quantity); err != nil {
			o.logger.Warn("failed to decrement stock",
				zap.String("product", item.ID),
				zap.Error(err))
		}
	}
}

// Cancel moves an order to cancelled with an optional note.
func (o *Orders) Cancel(id, note string) error {
	if note == "" {
		note = "order cancelled"
	}
	return o.UpdateStatus(id, models.OrderCancelled, note)
}

// Get returns the order with the given id.
func (o *Orders) Get(id string) (models.Order, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, ord := range o.orders {
		if ord.ID == id {
			return ord, nil
		}
	}
	return models.Order{}, fmt.Errorf("order %q: %w", id, ErrNotFound)
}

// All returns every order, most recent first.
func (o *Orders) All() []models.Order {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]models.Order(nil), o.orders...)
}

// ByStatus returns the orders currently in the given status.
func (o *Orders) ByStatus(status models.OrderStatus) []models.Order {
	o.mu.Lock()
	defer o.mu.Unlock()

	var out []models.Order
	for _, ord := range o.orders {
		if ord.Status == status {
			out = append(out, ord)
		}
	}
	return out
}

// ByEmail returns the orders placed with the given customer email.
func (o *Orders) ByEmail(email string) []models.Order {
	o.mu.Lock()
	defer o.mu.Unlock()

	var out []models.Order
	for _, ord := range o.orders {
		if strings.EqualFold(ord.CustomerInfo.Email, email) {
			out = append(out, ord)
		}
	}
	return out
}
