// Package catalog manages the storefront reference data: wash packages,
// retail products, slider images and the about page content. All four
// collections are persisted together under one key, carwash_data.
package catalog

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"wolkecarwash/internal/ids"
	"wolkecarwash/internal/models"
	"wolkecarwash/internal/store"
)

// ErrNotFound is returned when a package, product or slide id is unknown.
var ErrNotFound = errors.New("catalog: not found")

// Service owns the carwash_data collection. Every mutation writes the
// whole blob back synchronously.
type Service struct {
	store  store.Store
	logger *zap.Logger

	mu   sync.Mutex
	data models.SiteData
}

// New loads the catalog from the store, falling back to the bundled
// defaults when nothing is stored or the blob is unreadable.
func New(s store.Store, logger *zap.Logger) *Service {
	return &Service{
		store:  s,
		logger: logger,
		data:   store.LoadOr(s, logger, store.KeyData, defaultSiteData()),
	}
}

func (s *Service) save() error {
	if err := s.store.Save(store.KeyData, s.data); err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}
	return nil
}

// Reset restores every catalog collection to its bundled default
// snapshot, irreversibly overwriting stored data.
func (s *Service) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = defaultSiteData()
	return s.save()
}

// Packages returns the wash packages in catalog order.
func (s *Service) Packages() []models.WashPackage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.WashPackage(nil), s.data.WashPackages...)
}

// Package looks up a wash package by id.
func (s *Service) Package(id string) (models.WashPackage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, pkg := range s.data.WashPackages {
		if pkg.ID == id {
			return pkg, nil
		}
	}
	return models.WashPackage{}, fmt.Errorf("package %q: %w", id, ErrNotFound)
}

// AddPackage appends a wash package, assigning an id when none is set.
func (s *Service) AddPackage(pkg models.WashPackage) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pkg.ID == "" {
		pkg.ID = ids.New("pkg")
	}
	if pkg.Features == nil {
		pkg.Features = []string{}
	}
	s.data.WashPackages = append(s.data.WashPackages, pkg)
	return pkg.ID, s.save()
}

// UpdatePackage replaces the package with the given id.
func (s *Service) UpdatePackage(id string, pkg models.WashPackage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.WashPackages {
		if s.data.WashPackages[i].ID == id {
			pkg.ID = id
			if pkg.Features == nil {
				pkg.Features = []string{}
			}
			s.data.WashPackages[i] = pkg
			return s.save()
		}
	}
	return fmt.Errorf("package %q: %w", id, ErrNotFound)
}

// DeletePackage removes the package with the given id.
func (s *Service) DeletePackage(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.WashPackages {
		if s.data.WashPackages[i].ID == id {
			s.data.WashPackages = append(s.data.WashPackages[:i], s.data.WashPackages[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("package %q: %w", id, ErrNotFound)
}

// Products returns the retail products in catalog order.
func (s *Service) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.data.ProductData...)
}

// Product looks up a retail product by id. Unknown ids yield ErrNotFound
// so callers can render an explicit not-found state.
func (s *Service) Product(id string) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.data.ProductData {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("product %q: %w", id, ErrNotFound)
}

// AddProduct appends a product, assigning an id when none is set.
func (s *Service) AddProduct(p models.Product) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = ids.New("product")
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	s.data.ProductData = append(s.data.ProductData, p)
	return p.ID, s.save()
}

// UpdateProduct replaces the product with the given id.
func (s *Service) UpdateProduct(id string, p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.ProductData {
		if s.data.ProductData[i].ID == id {
			p.ID = id
			if p.Features == nil {
				p.Features = []string{}
			}
			s.data.ProductData[i] = p
			return s.save()
		}
	}
	return fmt.Errorf("product %q: %w", id, ErrNotFound)
}

// DeleteProduct removes the product with the given id.
func (s *Service) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.ProductData {
		if s.data.ProductData[i].ID == id {
			s.data.ProductData = append(s.data.ProductData[:i], s.data.ProductData[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("product %q: %w", id, ErrNotFound)
}

// DecrementStock reduces a product's stock by qty, floored at zero.
// Unknown product ids are ignored: order lines may reference products
// that have since been removed from the catalog.
func (s *Service) DecrementStock(productID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.ProductData {
		if s.data.ProductData[i].ID == productID {
			remaining := s.data.ProductData[i].Stock - qty
			if remaining < 0 {
				remaining = 0
			}
			s.data.ProductData[i].Stock = remaining
			return s.save()
		}
	}
	return nil
}

// Slides returns the landing page slides in display order.
func (s *Service) Slides() []models.Slide {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Slide(nil), s.data.SliderData...)
}

// AddSlide appends a slide, assigning an id when none is set.
func (s *Service) AddSlide(sl models.Slide) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sl.ID == "" {
		sl.ID = ids.New("slider")
	}
	s.data.SliderData = append(s.data.SliderData, sl)
	return sl.ID, s.save()
}

// UpdateSlide replaces the slide with the given id.
func (s *Service) UpdateSlide(id string, sl models.Slide) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.SliderData {
		if s.data.SliderData[i].ID == id {
			sl.ID = id
			s.data.SliderData[i] = sl
			return s.save()
		}
	}
	return fmt.Errorf("slide %q: %w", id, ErrNotFound)
}

// DeleteSlide removes the slide with the given id.
func (s *Service) DeleteSlide(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.SliderData {
		if s.data.SliderData[i].ID == id {
			s.data.SliderData = append(s.data.SliderData[:i], s.data.SliderData[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("slide %q: %w", id, ErrNotFound)
}

// About returns the about page content.
func (s *Service) About() models.AboutContent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.AboutContent
}

// UpdateAbout replaces the about page content.
func (s *Service) UpdateAbout(content models.AboutContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.AboutContent = content
	return s.save()
}
