// Package inventory tracks back-room supplies: cleaning agents, care
// products and accessories consumed by the wash lines.
package inventory

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"wolkecarwash/internal/ids"
	"wolkecarwash/internal/models"
	"wolkecarwash/internal/store"
)

// ErrNotFound is returned when a supply item id is unknown.
var ErrNotFound = errors.New("inventory: not found")

// Category and unit options offered by the admin forms.
var (
	Categories = []string{"Reinigungsmittel", "Pflegemittel", "Zubehör", "Geräte", "Ersatzteile"}
	Units      = []string{"Liter", "Stück", "Karton", "Packung", "Kilogramm"}
)

// Service owns the carwash_inventory collection.
type Service struct {
	store  store.Store
	logger *zap.Logger

	mu    sync.Mutex
	items []models.InventoryItem
}

// New loads the inventory, seeding the demo stock when nothing is
// stored yet.
func New(s store.Store, logger *zap.Logger) *Service {
	return &Service{
		store:  s,
		logger: logger,
		items:  store.LoadOr(s, logger, store.KeyInventory, defaultInventory()),
	}
}

func defaultInventory() []models.InventoryItem {
	return []models.InventoryItem{
		{ID: "inv-1", Name: "Autoshampoo Premium", Category: "Reinigungsmittel", Supplier: "CleanCar GmbH", Unit: "Liter", CurrentStock: 45, MinStock: 20, Price: 12.50, LastOrdered: "2023-11-10"},
		{ID: "inv-2", Name: "Felgenreiniger", Category: "Reinigungsmittel", Supplier: "CleanCar GmbH", Unit: "Liter", CurrentStock: 15, MinStock: 15, Price: 18.75, LastOrdered: "2023-10-28"},
		{ID: "inv-3", Name: "Wachspolitur", Category: "Pflegemittel", Supplier: "GlanzEffekt AG", Unit: "Liter", CurrentStock: 30, MinStock: 10, Price: 22.90, LastOrdered: "2023-11-05"},
		{ID: "inv-4", Name: "Mikrofasertücher", Category: "Zubehör", Supplier: "AutoPflege KG", Unit: "Stück", CurrentStock: 120, MinStock: 50, Price: 2.50, LastOrdered: "2023-10-15"},
		{ID: "inv-5", Name: "Insektenentferner", Category: "Reinigungsmittel", Supplier: "CleanCar GmbH", Unit: "Liter", CurrentStock: 8, MinStock: 10, Price: 15.20, LastOrdered: "2023-11-02"},
	}
}

func (s *Service) save() error {
	if err := s.store.Save(store.KeyInventory, s.items); err != nil {
		return fmt.Errorf("saving inventory: %w", err)
	}
	return nil
}

// Add appends a supply item, assigning an id when none is set. Negative
// stock values are clamped to zero.
func (s *Service) Add(item models.InventoryItem) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" {
		item.ID = ids.New("inv")
	}
	clampStock(&item)
	s.items = append(s.items, item)
	return item.ID, s.save()
}

// Update replaces the item with the given id.
func (s *Service) Update(id string, item models.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			item.ID = id
			clampStock(&item)
			s.items[i] = item
			return s.save()
		}
	}
	return fmt.Errorf("inventory item %q: %w", id, ErrNotFound)
}

// Delete removes the item with the given id.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("inventory item %q: %w", id, ErrNotFound)
}

// Restock sets the item's current stock and stamps today as the last
// order date.
func (s *Service) Restock(id string, stock int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			if stock < 0 {
				stock = 0
			}
			s.items[i].CurrentStock = stock
			s.items[i].LastOrdered = time.Now().Format("2006-01-02")
			return s.save()
		}
	}
	return fmt.Errorf("inventory item %q: %w", id, ErrNotFound)
}

// Get returns the item with the given id.
func (s *Service) Get(id string) (models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.InventoryItem{}, fmt.Errorf("inventory item %q: %w", id, ErrNotFound)
}

// All returns every supply item.
func (s *Service) All() []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.InventoryItem(nil), s.items...)
}

// LowStock returns the items at or below their minimum stock, the
// reorder list shown on the dashboard.
func (s *Service) LowStock() []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.InventoryItem
	for _, item := range s.items {
		if item.LowStock() {
			out = append(out, item)
		}
	}
	return out
}

func clampStock(item *models.InventoryItem) {
	if item.CurrentStock < 0 {
		item.CurrentStock = 0
	}
	if item.MinStock < 0 {
		item.MinStock = 0
	}
	if item.Price < 0 {
		item.Price = 0
	}
}
