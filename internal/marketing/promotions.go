// Package marketing manages promotion campaigns. A promotion's status
// is never set by hand: it is derived from its validity window against
// the current date and refreshed on every write.
package marketing

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

// ErrNotFound is returned when a promotion id is unknown.
var ErrNotFound = errors.New("marketing: not found")

// Derived promotion statuses.
const (
	StatusActive  = "Aktiv"
	StatusPlanned = "Geplant"
	StatusExpired = "Abgelaufen"
)

// StatusFor derives the promotion status from its date range at the
// given day. Dates are YYYY-MM-DD; an unparsable range counts as
// expired.
func StatusFor(p models.Promotion, today time.Time) string {
	start, err := time.Parse("2006-01-02", p.StartDate)
	if err != nil {
		return StatusExpired
	}
	end, err := time.Parse("2006-01-02", p.EndDate)
	if err != nil {
		return StatusExpired
	}

	day := today.Format("2006-01-02")
	switch {
	case end.Format("2006-01-02") < day:
		return StatusExpired
	case start.Format("2006-01-02") <= day:
		return StatusActive
	default:
		return StatusPlanned
	}
}

// Service owns the carwash_promotions collection.
type Service struct {
	store  store.Store
	logger *zap.Logger

	mu         sync.Mutex
	promotions []models.Promotion

	now func() time.Time // swapped out in tests
}

// New loads the promotions, seeding the demo campaigns when nothing is
// stored yet. Statuses are refreshed immediately since stored records
// may have aged past their window.
func New(s store.Store, logger *zap.Logger) *Service {
	svc := &Service{
		store:      s,
		logger:     logger,
		promotions: store.LoadOr(s, logger, store.KeyPromotions, defaultPromotions()),
		now:        time.Now,
	}
	svc.refreshLocked()
	return svc
}

func defaultPromotions() []models.Promotion {
	return []models.Promotion{
		{ID: "promo-1", Name: "Winterspezial", Code: "WINTER23", Discount: 15, Description: "Komplettwäsche mit Unterbodenschutz zum Sonderpreis", StartDate: "2023-12-01", EndDate: "2024-02-28"},
		{ID: "promo-2", Name: "Neukunden Rabatt", Code: "NEWCUST", Discount: 20, Description: "Rabatt für die erste Autowäsche bei uns", StartDate: "2023-11-01", EndDate: "2024-01-31"},
		{ID: "promo-3", Name: "Happy Monday", Code: "MONDAY", Discount: 10, Description: "Sparen Sie jeden Montag bei allen Waschprogrammen", StartDate: "2023-10-01", EndDate: "2023-11-30"},
		{ID: "promo-4", Name: "Sommeraktion", Code: "SOMMER24", Discount: 15, Description: "Spezielle Sommerangebote mit Insektenschutz", StartDate: "2024-06-01", EndDate: "2024-08-31"},
	}
}

func (s *Service) save() error {
	if err := s.store.Save(store.KeyPromotions, s.promotions); err != nil {
		return fmt.Errorf("saving promotions: %w", err)
	}
	return nil
}

// refreshLocked re-derives every status. Caller holds no lock during
// construction; all other callers hold s.mu.
func (s *Service) refreshLocked() {
	today := s.now()
	for i := range s.promotions {
		s.promotions[i].Status = StatusFor(s.promotions[i], today)
	}
}

// Add appends a promotion, assigning an id when none is set and
// deriving its status.
func (s *Service) Add(p models.Promotion) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = ids.New("promo")
	}
	p.Status = StatusFor(p, s.now())
	s.promotions = append(s.promotions, p)
	return p.ID, s.save()
}

// Update replaces the promotion with the given id, re-deriving its
// status from the (possibly changed) date range.
func (s *Service) Update(id string, p models.Promotion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.promotions {
		if s.promotions[i].ID == id {
			p.ID = id
			p.Status = StatusFor(p, s.now())
			s.promotions[i] = p
			return s.save()
		}
	}
	return fmt.Errorf("promotion %q: %w", id, ErrNotFound)
}

// Delete removes the promotion with the given id.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.promotions {
		if s.promotions[i].ID == id {
			s.promotions = append(s.promotions[:i], s.promotions[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("promotion %q: %w", id, ErrNotFound)
}

// All returns every promotion with freshly derived statuses.
func (s *Service) All() []models.Promotion {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refreshLocked()
	return append([]models.Promotion(nil), s.promotions...)
}

// ByStatus returns the promotions currently in the given derived
// status. "All" (or empty) matches everything.
func (s *Service) ByStatus(status string) []models.Promotion {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refreshLocked()
	var out []models.Promotion
	for _, p := range s.promotions {
		if status == "" || status == "All" || p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// Counts returns the number of promotions per derived status.
func (s *Service) Counts() (active, planned, expired int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refreshLocked()
	for _, p := range s.promotions {
		switch p.Status {
		case StatusActive:
			active++
		case StatusPlanned:
			planned++
		case StatusExpired:
			expired++
		}
	}
	return active, planned, expired
}
