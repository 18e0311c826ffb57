// Package weather manages wash site locations and derives staffing
// advice from the forecast. The forecast itself is bundled demo data;
// there is no live weather API.
package weather

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"wolkecarwash/internal/ids"
	"wolkecarwash/internal/models"
	"wolkecarwash/internal/store"
)

// ErrNotFound is returned when a location id is unknown.
var ErrNotFound = errors.New("weather: not found")

// Demand levels for the staffing advice.
const (
	DemandHigh   = "high"
	DemandMedium = "medium"
	DemandLow    = "low"
)

// Condition is one forecast entry for a day.
type Condition struct {
	Main string  // e.g. "Rain", "Clear", "Clouds"
	Temp float64 // °C
	Pop  float64 // probability of precipitation, 0..1
}

// Advice is the staffing recommendation shown on the dashboard.
type Advice struct {
	Demand string
	Text   string
}

// Rainy reports whether the day counts as a rain day: either an
// explicit rain condition or a precipitation probability above 50%.
// Rain days drive wash demand up once the showers pass.
func (c Condition) Rainy() bool {
	return c.Main == "Rain" || c.Pop > 0.5
}

// AdviceFor derives the staffing advice from today's and tomorrow's
// forecast.
func AdviceFor(today, tomorrow Condition) Advice {
	rainToday := today.Rainy()
	rainTomorrow := tomorrow.Rainy()

	switch {
	case rainToday && rainTomorrow:
		return Advice{
			Demand: DemandHigh,
			Text:   "Heute und morgen sind aufgrund von Regen mehr Kunden zu erwarten. Extra Personal einplanen.",
		}
	case rainToday:
		return Advice{
			Demand: DemandHigh,
			Text:   "Heute sind aufgrund von Regen mehr Kunden zu erwarten. Nach Regenschauern besonders hoch.",
		}
	case rainTomorrow:
		return Advice{
			Demand: DemandMedium,
			Text:   "Morgen sind aufgrund von Regen mehr Kunden zu erwarten. Vorbereitungen treffen.",
		}
	default:
		return Advice{
			Demand: DemandLow,
			Text:   "Ruhige Tage erwartet. Normale Personalstärke ist ausreichend.",
		}
	}
}

// DemoForecast is the bundled two-day forecast used by the dashboard.
func DemoForecast() (today, tomorrow Condition) {
	return Condition{Main: "Clouds", Temp: 8.4, Pop: 0.2},
		Condition{Main: "Rain", Temp: 7.1, Pop: 0.8}
}

// Locations owns the carwash_locations collection. Exactly one location
// is active at a time.
type Locations struct {
	store  store.Store
	logger *zap.Logger

	mu   sync.Mutex
	list []models.Location
}

// NewLocations loads the locations, seeding the demo sites when nothing
// is stored yet.
func NewLocations(s store.Store, logger *zap.Logger) *Locations {
	return &Locations{
		store:  s,
		logger: logger,
		list:   store.LoadOr(s, logger, store.KeyLocations, defaultLocations()),
	}
}

func defaultLocations() []models.Location {
	return []models.Location{
		{ID: "loc-1", Name: "München", Lat: 48.1351, Lon: 11.5820, IsActive: true},
		{ID: "loc-2", Name: "Berlin", Lat: 52.5200, Lon: 13.4050, IsActive: false},
		{ID: "loc-3", Name: "Frankfurt", Lat: 50.1109, Lon: 8.6821, IsActive: false},
	}
}

func (l *Locations) save() error {
	if err := l.store.Save(store.KeyLocations, l.list); err != nil {
		return fmt.Errorf("saving locations: %w", err)
	}
	return nil
}

// Add appends a location, assigning an id when none is set. The first
// location ever added becomes active.
func (l *Locations) Add(loc models.Location) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if loc.ID == "" {
		loc.ID = ids.New("loc")
	}
	loc.IsActive = len(l.list) == 0
	l.list = append(l.list, loc)
	return loc.ID, l.save()
}

// Delete removes the location with the given id. When the active
// location is removed, the first remaining one becomes active.
func (l *Locations) Delete(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.list {
		if l.list[i].ID == id {
			wasActive := l.list[i].IsActive
			l.list = append(l.list[:i], l.list[i+1:]...)
			if wasActive && len(l.list) > 0 {
				l.list[0].IsActive = true
			}
			return l.save()
		}
	}
	return fmt.Errorf("location %q: %w", id, ErrNotFound)
}

// Activate marks the given location active and every other inactive.
func (l *Locations) Activate(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	found := false
	for _, loc := range l.list {
		if loc.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("location %q: %w", id, ErrNotFound)
	}

	for i := range l.list {
		l.list[i].IsActive = l.list[i].ID == id
	}
	return l.save()
}

// Active returns the currently active location.
func (l *Locations) Active() (models.Location, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, loc := range l.list {
		if loc.IsActive {
			return loc, nil
		}
	}
	return models.Location{}, fmt.Errorf("no active location: %w", ErrNotFound)
}

// All returns every location.
func (l *Locations) All() []models.Location {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Location(nil), l.list...)
}
