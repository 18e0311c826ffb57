// Package dashboard aggregates headline figures for the back office.
// Everything here is a pure derivation over the other services.
package dashboard

import (
	"wolkecarwash/internal/customers"
	"wolkecarwash/internal/inventory"
	"wolkecarwash/internal/lifecycle"
	"wolkecarwash/internal/marketing"
	"wolkecarwash/internal/models"
	"wolkecarwash/internal/weather"
)

// Summary is the stat block shown at the top of the admin view.
type Summary struct {
	PendingOrders       int
	ConfirmedOrders     int
	DeliveredOrders     int
	CancelledOrders     int
	Revenue             float64 // total of delivered orders
	PendingAppointments int
	Customers           int
	LowStockItems       int
	ActivePromotions    int
	StaffingAdvice      weather.Advice
}

// Service computes summaries over the injected services.
type Service struct {
	orders       *lifecycle.Orders
	appointments *lifecycle.Appointments
	customers    *customers.Service
	inventory    *inventory.Service
	marketing    *marketing.Service
}

// New wires the dashboard to its sources.
func New(o *lifecycle.Orders, a *lifecycle.Appointments, c *customers.Service, inv *inventory.Service, m *marketing.Service) *Service {
	return &Service{orders: o, appointments: a, customers: c, inventory: inv, marketing: m}
}

// Summary derives the current stat block.
func (s *Service) Summary() Summary {
	var sum Summary

	for _, order := range s.orders.All() {
		switch order.Status {
		case models.OrderPending:
			sum.PendingOrders++
		case models.OrderConfirmed:
			sum.ConfirmedOrders++
		case models.OrderDelivered:
			sum.DeliveredOrders++
			sum.Revenue += order.TotalAmount
		case models.OrderCancelled:
			sum.CancelledOrders++
		}
	}

	sum.PendingAppointments = len(s.appointments.ByStatus(models.AppointmentPending))
	sum.Customers = len(s.customers.All())
	sum.LowStockItems = len(s.inventory.LowStock())
	active, _, _ := s.marketing.Counts()
	sum.ActivePromotions = active

	today, tomorrow := weather.DemoForecast()
	sum.StaffingAdvice = weather.AdviceFor(today, tomorrow)

	return sum
}
