package models

import "time"

// Product represents a retail product sold in the storefront
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Stock       int      `json:"stock"`
	Category    string   `json:"category,omitempty"`
	Features    []string `json:"features"`
}

// WashPackage represents a wash program offered at the station
type WashPackage struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Features []string `json:"features"`
	Color    string   `json:"color,omitempty"`
}

// Slide represents one image of the landing page slider
type Slide struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// AboutSection is a titled block of the about page
type AboutSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

// AboutStat is a headline figure shown on the about page
type AboutStat struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// AboutContent holds the editable about page content
type AboutContent struct {
	Title           string         `json:"title"`
	HeroImage       string         `json:"heroImage,omitempty"`
	WelcomeMessage  string         `json:"welcomeMessage,omitempty"`
	MainDescription string         `json:"mainDescription,omitempty"`
	Sections        []AboutSection `json:"sections"`
	Stats           []AboutStat    `json:"stats"`
}

// SiteData bundles the storefront collections persisted under carwash_data
type SiteData struct {
	WashPackages []WashPackage `json:"washPackages"`
	SliderData   []Slide       `json:"sliderData"`
	ProductData  []Product     `json:"productData"`
	AboutContent AboutContent  `json:"aboutContent"`
}

// ItemKind distinguishes retail products from wash packages in the cart
type ItemKind string

const (
	KindProduct ItemKind = "product"
	KindPackage ItemKind = "package"
)

// CartItem represents one line of the cart.
// Identity is (ID, AddedAt): the same product can sit in the cart as
// several distinct lines when added at different times.
type CartItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	Kind            ItemKind `json:"type"`
	Quantity        int      `json:"quantity"`
	AddedAt         int64    `json:"addedAt"` // unix milliseconds
	AppointmentDate string   `json:"appointmentDate,omitempty"`
	AppointmentTime string   `json:"appointmentTime,omitempty"`
}

// StatusEntry is one append-only record of a status change
type StatusEntry struct {
	Status string    `json:"status"`
	Date   time.Time `json:"date"`
	Note   string    `json:"note,omitempty"`
}

// OrderCustomer holds the checkout contact details captured with an order
type OrderCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Order represents a placed storefront order
type Order struct {
	ID            string        `json:"id"`
	Items         []CartItem    `json:"items"`
	CustomerInfo  OrderCustomer `json:"customerInfo"`
	TotalAmount   float64       `json:"totalAmount"`
	Status        OrderStatus   `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	StatusHistory []StatusEntry `json:"statusHistory"`
}

// PackageSnapshot is the name/price copy taken when an appointment is
// booked, so later catalog edits never alter historical records.
type PackageSnapshot struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// AppointmentCustomer holds the contact details captured with a booking
type AppointmentCustomer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	CarModel string `json:"carModel,omitempty"`
}

// Appointment represents a booked wash appointment
type Appointment struct {
	ID              string              `json:"id"`
	Package         PackageSnapshot     `json:"package"`
	CustomerInfo    AppointmentCustomer `json:"customerInfo"`
	AppointmentDate string              `json:"appointmentDate"`
	AppointmentTime string              `json:"appointmentTime"`
	Status          AppointmentStatus   `json:"status"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	StatusHistory   []StatusEntry       `json:"statusHistory"`
}

// Customer represents a registered customer of the wash
type Customer struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	LicensePlate string `json:"licensePlate,omitempty"`
	CarModel     string `json:"carModel,omitempty"`
	Loyalty      string `json:"loyalty"`
	LastVisit    string `json:"lastVisit,omitempty"` // YYYY-MM-DD
	Visits       int    `json:"visits"`
}

// Employee represents a staff member
type Employee struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Shift    string `json:"shift,omitempty"`
	Status   string `json:"status"`
}

// InventoryItem represents a back-room supply item
type InventoryItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category,omitempty"`
	Supplier     string  `json:"supplier,omitempty"`
	Unit         string  `json:"unit,omitempty"`
	CurrentStock int     `json:"currentStock"`
	MinStock     int     `json:"minStock"`
	Price        float64 `json:"price"`
	LastOrdered  string  `json:"lastOrdered,omitempty"` // YYYY-MM-DD
}

// LowStock reports whether the item has fallen to or below its minimum
func (i InventoryItem) LowStock() bool {
	return i.CurrentStock <= i.MinStock
}

// Promotion represents a marketing campaign with a validity window
type Promotion struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Discount    int    `json:"discount"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"startDate"` // YYYY-MM-DD
	EndDate     string `json:"endDate"`   // YYYY-MM-DD
	Status      string `json:"status"`
}

// Todo represents a note on the back-office todo list
type Todo struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Location represents a site whose weather drives staffing advice
type Location struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	IsActive bool    `json:"isActive"`
}
