package models

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a known order status
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// CanTransition reports whether moving from s to next is a legal step.
// Orders move forward only: pending -> confirmed -> delivered, with
// cancellation allowed from any non-terminal state.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if !next.Valid() || s.Terminal() {
		return false
	}
	switch s {
	case OrderPending:
		return next == OrderConfirmed || next == OrderCancelled
	case OrderConfirmed:
		return next == OrderDelivered || next == OrderCancelled
	}
	return false
}

// AppointmentStatus is the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is a known appointment status
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentCompleted || s == AppointmentCancelled
}

// CanTransition reports whether moving from s to next is a legal step.
// Appointments share the order state machine shape: pending -> confirmed
// -> completed, cancellation from any non-terminal state.
func (s AppointmentStatus) CanTransition(next AppointmentStatus) bool {
	if !next.Valid() || s.Terminal() {
		return false
	}
	switch s {
	case AppointmentPending:
		return next == AppointmentConfirmed || next == AppointmentCancelled
	case AppointmentConfirmed:
		return next == AppointmentCompleted || next == AppointmentCancelled
	}
	return false
}
