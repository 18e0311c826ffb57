package store

// Collection keys. Each collection lives under its own key; the names
// are kept compatible with the data layout of earlier releases.
const (
	KeyData         = "carwash_data"
	KeyOrders       = "carwash_orders"
	KeyAppointments = "carwash_appointments"
	KeyCart         = "carwash_cart"
	KeyCustomers    = "carwash_customers"
	KeyEmployees    = "carwash_employees"
	KeyInventory    = "carwash_inventory"
	KeyPromotions   = "carwash_promotions"
	KeyTodos        = "carwash_todos"
	KeyLocations    = "carwash_locations"
)
