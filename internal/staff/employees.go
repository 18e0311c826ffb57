// Package staff manages employees and the back-office todo list.
package staff

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"wolkecarwash/internal/ids"
	"wolkecarwash/internal/models"
	"wolkecarwash/internal/store"
)

// ErrNotFound is returned when an employee or todo id is unknown.
var ErrNotFound = errors.New("staff: not found")

// Employee status values.
const (
	StatusActive     = "Aktiv"
	StatusOnVacation = "Im Urlaub"
	StatusSick       = "Krank"
)

// Employees owns the carwash_employees collection.
type Employees struct {
	store  store.Store
	logger *zap.Logger

	mu   sync.Mutex
	list []models.Employee
}

// NewEmployees loads the employee roster, seeding the demo roster when
// nothing is stored yet.
func NewEmployees(s store.Store, logger *zap.Logger) *Employees {
	return &Employees{
		store:  s,
		logger: logger,
		list:   store.LoadOr(s, logger, store.KeyEmployees, defaultEmployees()),
	}
}

func defaultEmployees() []models.Employee {
	return []models.Employee{
		{ID: "emp-1", Name: "Hans Müller", Position: "Waschanlagenführer", Phone: "+49 123 45678", Email: "hans@wolke-carwash.de", Shift: "Frühschicht", Status: StatusActive},
		{ID: "emp-2", Name: "Maria Schmidt", Position: "Kassierer", Phone: "+49 234 56789", Email: "maria@wolke-carwash.de", Shift: "Spätschicht", Status: StatusActive},
		{ID: "emp-3", Name: "Thomas Weber", Position: "Detailreiniger", Phone: "+49 345 67890", Email: "thomas@wolke-carwash.de", Shift: "Wochenende", Status: StatusActive},
		{ID: "emp-4", Name: "Anna Meyer", Position: "Manager", Phone: "+49 456 78901", Email: "anna@wolke-carwash.de", Shift: "Vollzeit", Status: StatusOnVacation},
		{ID: "emp-5", Name: "Michael Wagner", Position: "Auszubildender", Phone: "+49 567 89012", Email: "michael@wolke-carwash.de", Shift: "Teilzeit", Status: StatusSick},
	}
}

func (e *Employees) save() error {
	if err := e.store.Save(store.KeyEmployees, e.list); err != nil {
		return fmt.Errorf("saving employees: %w", err)
	}
	return nil
}

// Add appends an employee, assigning an id when none is set.
func (e *Employees) Add(emp models.Employee) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if emp.ID == "" {
		emp.ID = ids.New("emp")
	}
	if emp.Status == "" {
		emp.Status = StatusActive
	}
	e.list = append(e.list, emp)
	return emp.ID, e.save()
}

// Update replaces the employee with the given id.
func (e *Employees) Update(id string, emp models.Employee) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.list {
		if e.list[i].ID == id {
			emp.ID = id
			e.list[i] = emp
			return e.save()
		}
	}
	return fmt.Errorf("employee %q: %w", id, ErrNotFound)
}

// Delete removes the employee with the given id.
func (e *Employees) Delete(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.list {
		if e.list[i].ID == id {
			e.list = append(e.list[:i], e.list[i+1:]...)
			return e.save()
		}
	}
	return fmt.Errorf("employee %q: %w", id, ErrNotFound)
}

// All returns the full roster.
func (e *Employees) All() []models.Employee {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.Employee(nil), e.list...)
}

// ByStatus returns the employees with the given status.
func (e *Employees) ByStatus(status string) []models.Employee {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []models.Employee
	for _, emp := range e.list {
		if emp.Status == status {
			out = append(out, emp)
		}
	}
	return out
}
