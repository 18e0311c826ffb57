// Package simulate generates randomized storefront traffic against the
// real services. It seeds believable demo data and doubles as a sanity
// check that the order pipeline holds up under concurrent use.
package simulate

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"wolkecarwash/internal/catalog"
	"wolkecarwash/internal/lifecycle"
	"wolkecarwash/internal/models"
)

// Results summarizes one simulation run.
type Results struct {
	OrdersCreated      int
	AppointmentsBooked int
	Delivered          int
	Completed          int
	Cancelled          int
	Failures           int
	Duration           time.Duration
}

// Generator drives random customers through checkout and booking.
type Generator struct {
	catalog *catalog.Service
	orders  *lifecycle.Orders
	appts   *lifecycle.Appointments
	logger  *zap.Logger

	concurrency int
	perWorker   int
	seed        int64
}

var demoCustomers = []models.OrderCustomer{
	{Name: "Klaus Schäfer", Email: "klaus@example.com", Phone: "+49 123 45678", Address: "Leopoldstraße 12, München"},
	{Name: "Sabine Bauer", Email: "sabine@example.com", Phone: "+49 234 56789", Address: "Hohenzollernring 3, Köln"},
	{Name: "Erich Hoffmann", Email: "erich@example.com", Phone: "+49 345 67890", Address: "Kantstraße 88, Berlin"},
	{Name: "Monika Fischer", Email: "monika@example.com", Phone: "+49 456 78901", Address: "Zeil 41, Frankfurt"},
	{Name: "Jürgen Klein", Email: "jurgen@example.com", Phone: "+49 567 89012", Address: "Königsallee 7, Düsseldorf"},
}

var demoCars = []string{"BMW 3", "VW Golf", "Mercedes E-Klasse", "Audi A4", "Opel Astra"}

// New creates a generator over the given services.
func New(cat *catalog.Service, orders *lifecycle.Orders, appts *lifecycle.Appointments, logger *zap.Logger) *Generator {
	return &Generator{
		catalog:     cat,
		orders:      orders,
		appts:       appts,
		logger:      logger,
		concurrency: 4,
		perWorker:   5,
		seed:        time.Now().UnixNano(),
	}
}

// SetConcurrency sets the number of concurrent simulated customers.
func (g *Generator) SetConcurrency(n int) {
	if n > 0 {
		g.concurrency = n
	}
}

// SetOrdersPerWorker sets how many purchases each simulated customer makes.
func (g *Generator) SetOrdersPerWorker(n int) {
	if n > 0 {
		g.perWorker = n
	}
}

// SetSeed pins the random source for reproducible runs.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

func (g *Generator) randomLines(rng *rand.Rand) ([]models.CartItem, float64) {
	products := g.catalog.Products()
	if len(products) == 0 {
		return nil, 0
	}

	count := 1 + rng.Intn(3)
	lines := make([]models.CartItem, 0, count)
	total := 0.0
	for i := 0; i < count; i++ {
		p := products[rng.Intn(len(products))]
		qty := 1 + rng.Intn(2)
		lines = append(lines, models.CartItem{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Kind:     models.KindProduct,
			Quantity: qty,
			AddedAt:  time.Now().UnixMilli(),
		})
		total += p.Price * float64(qty)
	}
	return lines, total
}

// placeOrder runs one order through a random slice of its lifecycle.
func (g *Generator) placeOrder(rng *rand.Rand, res *Results, mu *sync.Mutex) {
	customer := demoCustomers[rng.Intn(len(demoCustomers))]
	lines, total := g.randomLines(rng)

	id, err := g.orders.Create(lines, customer, total)
	if err != nil {
		mu.Lock()
		res.Failures++
		mu.Unlock()
		return
	}

	mu.Lock()
	res.OrdersCreated++
	mu.Unlock()

	// Roughly: a tenth cancel straight away, the rest get confirmed and
	// two thirds of those are delivered.
	switch {
	case rng.Intn(10) == 0:
		if err := g.orders.Cancel(id, "simulation"); err == nil {
			mu.Lock()
			res.Cancelled++
			mu.Unlock()
		}
	default:
		if err := g.orders.UpdateStatus(id, models.OrderConfirmed, ""); err != nil {
			return
		}
		if rng.Intn(3) < 2 {
			if err := g.orders.UpdateStatus(id, models.OrderDelivered, ""); err == nil {
				mu.Lock()
				res.Delivered++
				mu.Unlock()
			}
		}
	}
}

// bookAppointment books one appointment and sometimes completes it.
func (g *Generator) bookAppointment(rng *rand.Rand, res *Results, mu *sync.Mutex) {
	packages := g.catalog.Packages()
	if len(packages) == 0 {
		return
	}
	pkg := packages[rng.Intn(len(packages))]
	customer := demoCustomers[rng.Intn(len(demoCustomers))]

	form := lifecycle.BookingForm{
		Name:     customer.Name,
		Email:    customer.Email,
		Phone:    customer.Phone,
		CarModel: demoCars[rng.Intn(len(demoCars))],
		Date:     time.Now().AddDate(0, 0, 1+rng.Intn(14)).Format("2006-01-02"),
		Time:     fmt.Sprintf("%02d:%02d", 8+rng.Intn(9), 30*rng.Intn(2)),
	}

	id, err := g.appts.Create(form, pkg.ID)
	if err != nil {
		mu.Lock()
		res.Failures++
		mu.Unlock()
		return
	}

	mu.Lock()
	res.AppointmentsBooked++
	mu.Unlock()

	if rng.Intn(2) == 0 {
		if err := g.appts.UpdateStatus(id, models.AppointmentConfirmed, ""); err != nil {
			return
		}
		if err := g.appts.UpdateStatus(id, models.AppointmentCompleted, ""); err == nil {
			mu.Lock()
			res.Completed++
			mu.Unlock()
		}
	}
}

// Run executes the simulation and returns the tally.
func (g *Generator) Run() Results {
	start := time.Now()

	var (
		res Results
		mu  sync.Mutex
		wg  sync.WaitGroup
	)

	for w := 0; w < g.concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			// Each worker gets its own source; rand.Rand is not safe for
			// concurrent use.
			rng := rand.New(rand.NewSource(g.seed + int64(worker)))
			for i := 0; i < g.perWorker; i++ {
				g.placeOrder(rng, &res, &mu)
				if rng.Intn(2) == 0 {
					g.bookAppointment(rng, &res, &mu)
				}
			}
		}(w)
	}
	wg.Wait()

	res.Duration = time.Since(start)
	g.logger.Info("simulation finished",
		zap.Int("orders", res.OrdersCreated),
		zap.Int("appointments", res.AppointmentsBooked),
		zap.Int("failures", res.Failures),
		zap.Duration("duration", res.Duration))
	return res
}
