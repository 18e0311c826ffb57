// Package customers keeps the customer registry and derives loyalty
// tiers from visit counts.
package customers

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"wolkecarwash/internal/ids"
	"wolkecarwash/internal/models"
	"wolkecarwash/internal/store"
)

// ErrNotFound is returned when a customer id is unknown.
var ErrNotFound = errors.New("customers: not found")

// LoyaltyLevel maps a visit threshold to a discount percentage.
type LoyaltyLevel struct {
	Name      string
	MinVisits int
	Discount  int
}

// DefaultLevels are the loyalty tiers, lowest first.
var DefaultLevels = []LoyaltyLevel{
	{Name: "Standard", MinVisits: 0, Discount: 0},
	{Name: "Bronze", MinVisits: 3, Discount: 5},
	{Name: "Silber", MinVisits: 5, Discount: 10},
	{Name: "Gold", MinVisits: 10, Discount: 15},
}

// LevelFor returns the highest tier whose threshold the visit count meets.
func LevelFor(visits int) LoyaltyLevel {
	level := DefaultLevels[0]
	for _, l := range DefaultLevels {
		if visits >= l.MinVisits {
			level = l
		}
	}
	return level
}

// DiscountFor returns the discount percentage of the named tier.
func DiscountFor(loyalty string) int {
	for _, l := range DefaultLevels {
		if l.Name == loyalty {
			return l.Discount
		}
	}
	return 0
}

// Service owns the carwash_customers collection.
type Service struct {
	store  store.Store
	logger *zap.Logger

	mu        sync.Mutex
	customers []models.Customer
}

// New loads the customer registry, seeding the demo customers when
// nothing is stored yet.
func New(s store.Store, logger *zap.Logger) *Service {
	return &Service{
		store:     s,
		logger:    logger,
		customers: store.LoadOr(s, logger, store.KeyCustomers, defaultCustomers()),
	}
}

func defaultCustomers() []models.Customer {
	return []models.Customer{
		{ID: "cust-1", Name: "Klaus Schäfer", Email: "klaus@example.com", Phone: "+49 123 45678", LicensePlate: "M-KS 123", CarModel: "BMW 3", Loyalty: "Gold", LastVisit: "2023-12-05", Visits: 12},
		{ID: "cust-2", Name: "Sabine Bauer", Email: "sabine@example.com", Phone: "+49 234 56789", LicensePlate: "K-SB 456", CarModel: "VW Golf", Loyalty: "Silber", LastVisit: "2023-12-10", Visits: 8},
		{ID: "cust-3", Name: "Erich Hoffmann", Email: "erich@example.com", Phone: "+49 345 67890", LicensePlate: "B-EH 789", CarModel: "Mercedes E-Klasse", Loyalty: "Bronze", LastVisit: "2023-11-28", Visits: 4},
		{ID: "cust-4", Name: "Monika Fischer", Email: "monika@example.com", Phone: "+49 456 78901", LicensePlate: "F-MF 012", CarModel: "Audi A4", Loyalty: "Gold", LastVisit: "2023-12-08", Visits: 15},
		{ID: "cust-5", Name: "Jürgen Klein", Email: "jurgen@example.com", Phone: "+49 567 89012", LicensePlate: "D-JK 345", CarModel: "Opel Astra", Loyalty: "Standard", LastVisit: "2023-11-15", Visits: 2},
	}
}

func (s *Service) save() error {
	if err := s.store.Save(store.KeyCustomers, s.customers); err != nil {
		return fmt.Errorf("saving customers: %w", err)
	}
	return nil
}

// Add registers a customer. The loyalty tier is derived from the visit
// count, overriding whatever the caller set.
func (s *Service) Add(c models.Customer) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = ids.New("cust")
	}
	if c.Visits < 0 {
		c.Visits = 0
	}
	c.Loyalty = LevelFor(c.Visits).Name
	s.customers = append(s.customers, c)
	return c.ID, s.save()
}

// Update replaces the customer with the given id, re-deriving the
// loyalty tier from the (possibly changed) visit count.
func (s *Service) Update(id string, c models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			c.ID = id
			if c.Visits < 0 {
				c.Visits = 0
			}
			c.Loyalty = LevelFor(c.Visits).Name
			s.customers[i] = c
			return s.save()
		}
	}
	return fmt.Errorf("customer %q: %w", id, ErrNotFound)
}

// Delete removes the customer with the given id.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("customer %q: %w", id, ErrNotFound)
}

// RecordVisit bumps the visit count, refreshes the last-visit date and
// re-derives the loyalty tier.
func (s *Service) RecordVisit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers[i].Visits++
			s.customers[i].LastVisit = time.Now().Format("2006-01-02")
			s.customers[i].Loyalty = LevelFor(s.customers[i].Visits).Name
			return s.save()
		}
	}
	return fmt.Errorf("customer %q: %w", id, ErrNotFound)
}

// Get returns the customer with the given id.
func (s *Service) Get(id string) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Customer{}, fmt.Errorf("customer %q: %w", id, ErrNotFound)
}

// All returns every customer.
func (s *Service) All() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Customer(nil), s.customers...)
}

// Filter returns the customers matching the loyalty tier (empty or
// "All" matches every tier) and a case-insensitive name search.
func (s *Service) Filter(loyalty, search string) []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	search = strings.ToLower(search)
	var out []models.Customer
	for _, c := range s.customers {
		if loyalty != "" && loyalty != "All" && c.Loyalty != loyalty {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(c.Name), search) {
			continue
		}
		out = append(out, c)
	}
	return out
}
