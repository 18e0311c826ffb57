// Package cart implements the shopping cart aggregate. Lines are keyed
// by (item id, addedAt); totals are derived on read and never stored.
package cart

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"wolkecarwash/internal/models"
	"wolkecarwash/internal/store"
)

// ErrPackageInCart is returned when a second wash package is added while
// one is already in the cart. Only one package per checkout is allowed.
var ErrPackageInCart = errors.New("cart: a wash package is already in the cart")

// Cart accumulates line items prior to checkout. Every mutation is
// persisted synchronously under carwash_cart.
type Cart struct {
	store  store.Store
	logger *zap.Logger

	mu    sync.Mutex
	items []models.CartItem

	now func() int64 // unix ms, swapped out in tests
}

// New loads the cart from the store. A missing or unreadable collection
// yields an empty cart.
func New(s store.Store, logger *zap.Logger) *Cart {
	return &Cart{
		store:  s,
		logger: logger,
		items:  store.LoadOr(s, logger, store.KeyCart, []models.CartItem{}),
		now:    func() int64 { return time.Now().UnixMilli() },
	}
}

func (c *Cart) save() error {
	if err := c.store.Save(store.KeyCart, c.items); err != nil {
		return fmt.Errorf("saving cart: %w", err)
	}
	return nil
}

// AddItem adds an item to the cart. Quantities below one are treated as
// one. Adding a product that is already in the cart bumps the quantity
// of the existing line; adding a second wash package is rejected.
func (c *Cart) AddItem(item models.CartItem, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if item.Kind != models.KindPackage {
		for i := range c.items {
			if c.items[i].ID == item.ID {
				c.items[i].Quantity += quantity
				return c.save()
			}
		}
	} else if c.hasPackage() {
		return ErrPackageInCart
	}

	item.Quantity = quantity
	item.AddedAt = c.now()
	c.items = append(c.items, item)
	return c.save()
}

func (c *Cart) hasPackage() bool {
	for _, it := range c.items {
		if it.Kind == models.KindPackage {
			return true
		}
	}
	return false
}

// HasPackage reports whether a wash package line is in the cart.
func (c *Cart) HasPackage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasPackage()
}

// Remove drops the line matching both id and addedAt. Removing a line
// that is not there is a no-op.
func (c *Cart) Remove(id string, addedAt int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, it := range c.items {
		if !(it.ID == id && it.AddedAt == addedAt) {
			kept = append(kept, it)
		}
	}
	c.items = kept
	return c.save()
}

// Increase bumps the quantity of the matching line by one.
func (c *Cart) Increase(id string, addedAt int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id && c.items[i].AddedAt == addedAt {
			c.items[i].Quantity++
			return c.save()
		}
	}
	return nil
}

// Decrease lowers the quantity of the matching line by one. A line at
// quantity one is removed entirely; the cart never holds a zero line.
func (c *Cart) Decrease(id string, addedAt int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id && c.items[i].AddedAt == addedAt {
			if c.items[i].Quantity > 1 {
				c.items[i].Quantity--
			} else {
				c.items = append(c.items[:i], c.items[i+1:]...)
			}
			return c.save()
		}
	}
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = []models.CartItem{}
	return c.save()
}

// Items returns a copy of the current lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.CartItem(nil), c.items...)
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity over all lines.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0.0
	for _, it := range c.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
