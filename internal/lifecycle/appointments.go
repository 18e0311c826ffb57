package lifecycle

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"wolkecarwash/internal/catalog"
	"wolkecarwash/internal/ids"
	"wolkecarwash/internal/models"
	"wolkecarwash/internal/store"
)

// BookingForm is the input collected by the booking page.
type BookingForm struct {
	Name     string
	Email    string
	Phone    string
	CarModel string
	Date     string // YYYY-MM-DD
	Time     string // HH:MM
}

// Appointments manages the carwash_appointments collection.
type Appointments struct {
	store   store.Store
	catalog *catalog.Service
	logger  *zap.Logger

	mu           sync.Mutex
	appointments []models.Appointment
}

// NewAppointments loads the appointment collection from the store. The
// catalog is needed to snapshot package name and price at booking time.
func NewAppointments(s store.Store, cat *catalog.Service, logger *zap.Logger) *Appointments {
	return &Appointments{
		store:        s,
		catalog:      cat,
		logger:       logger,
		appointments: store.LoadOr(s, logger, store.KeyAppointments, []models.Appointment{}),
	}
}

func (a *Appointments) save() error {
	if err := a.store.Save(store.KeyAppointments, a.appointments); err != nil {
		return fmt.Errorf("saving appointments: %w", err)
	}
	return nil
}

// Create books a pending appointment for the given package. The package
// name and price are copied into the record at booking time so later
// catalog edits never alter the appointment. An unknown package id is
// recorded with a zero-price placeholder rather than rejected.
func (a *Appointments) Create(form BookingForm, packageID string) (string, error) {
	snapshot := models.PackageSnapshot{ID: packageID, Name: "Unbekanntes Paket"}
	if pkg, err := a.catalog.Package(packageID); err == nil {
		snapshot.Name = pkg.Name
		snapshot.Price = pkg.Price
	} else if !errors.Is(err, catalog.ErrNotFound) {
		return "", err
	}

	now := time.Now()
	appt := models.Appointment{
		ID:      ids.New("appt"),
		Package: snapshot,
		CustomerInfo: models.AppointmentCustomer{
			Name:     form.Name,
			Email:    form.Email,
			Phone:    form.Phone,
			CarModel: form.CarModel,
		},
		AppointmentDate: form.Date,
		AppointmentTime: form.Time,
		Status:          models.AppointmentPending,
		CreatedAt:       now,
		UpdatedAt:       now,
		StatusHistory: []models.StatusEntry{
			{Status: string(models.AppointmentPending), Date: now, Note: "appointment created"},
		},
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.appointments = append([]models.Appointment{appt}, a.appointments...)
	if err := a.save(); err != nil {
		return "", err
	}

	a.logger.Info("appointment created",
		zap.String("id", appt.ID),
		zap.String("package", snapshot.ID),
		zap.String("date", appt.AppointmentDate))
	return appt.ID, nil
}

// UpdateStatus moves an appointment to the next status, appending a
// history entry. Illegal transitions are rejected with
// ErrInvalidTransition.
func (a *Appointments) UpdateStatus(id string, next models.AppointmentStatus, note string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx := -1
	for i := range a.appointments {
		if a.appointments[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("appointment %q: %w", id, ErrNotFound)
	}

	current := a.appointments[idx].Status
	if !current.CanTransition(next) {
		return fmt.Errorf("appointment %q: %s -> %s: %w", id, current, next, ErrInvalidTransition)
	}

	if note == "" {
		note = fmt.Sprintf("status updated to %s", next)
	}
	now := time.Now()
	a.appointments[idx].Status = next
	a.appointments[idx].UpdatedAt = now
	a.appointments[idx].StatusHistory = append(a.appointments[idx].StatusHistory, models.StatusEntry{
		Status: string(next),
		Date:   now,
		Note:   note,
	})

	if err := a.save(); err != nil {
		return err
	}

	a.logger.Info("appointment status updated",
		zap.String("id", id),
		zap.String("from", string(current)),
		zap.String("to", string(next)))
	return nil
}

// Cancel moves an appointment to cancelled with an optional note.
func (a *Appointments) Cancel(id, note string) error {
	if note == "" {
		note = "appointment cancelled"
	}
	return a.UpdateStatus(id, models.AppointmentCancelled, note)
}

// Get returns the appointment with the given id.
func (a *Appointments) Get(id string) (models.Appointment, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, appt := range a.appointments {
		if appt.ID == id {
			return appt, nil
		}
	}
	return models.Appointment{}, fmt.Errorf("appointment %q: %w", id, ErrNotFound)
}

// All returns every appointment, most recent first.
func (a *Appointments) All() []models.Appointment {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.Appointment(nil), a.appointments...)
}

// ByStatus returns the appointments currently in the given status.
func (a *Appointments) ByStatus(status models.AppointmentStatus) []models.Appointment {
	a.mu.Lock()
	defer a.mu.Unlock()

	var out []models.Appointment
	for _, appt := range a.appointments {
		if appt.Status == status {
			out = append(out, appt)
		}
	}
	return out
}

// ByDate returns the appointments booked for the given day.
func (a *Appointments) ByDate(date string) []models.Appointment {
	a.mu.Lock()
	defer a.mu.Unlock()

	var out []models.Appointment
	for _, appt := range a.appointments {
		if appt.AppointmentDate == date {
			out = append(out, appt)
		}
	}
	return out
}
