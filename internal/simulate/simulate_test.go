package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wolkecarwash/internal/catalog"
	"wolkecarwash/internal/lifecycle"
	"wolkecarwash/internal/models"
	"wolkecarwash/internal/store"
)

func newTestGenerator(t *testing.T) (*Generator, *lifecycle.Orders, *lifecycle.Appointments) {
	t.Helper()
	mem := store.NewMemory()
	logger := zap.NewNop()
	cat := catalog.New(mem, logger)
	orders := lifecycle.NewOrders(mem, cat, logger)
	appts := lifecycle.NewAppointments(mem, cat, logger)

	g := New(cat, orders, appts, logger)
	g.SetSeed(1)
	return g, orders, appts
}

func TestRunProducesConsistentTallies(t *testing.T) {
	g, orders, appts := newTestGenerator(t)
	g.SetConcurrency(4)
	g.SetOrdersPerWorker(5)

	res := g.Run()

	assert.Equal(t, 20, res.OrdersCreated)
	assert.Zero(t, res.Failures)
	assert.Len(t, orders.All(), res.OrdersCreated)
	assert.Len(t, appts.All(), res.AppointmentsBooked)
	assert.Equal(t, res.Delivered, len(orders.ByStatus(models.OrderDelivered)))
	assert.Equal(t, res.Cancelled, len(orders.ByStatus(models.OrderCancelled)))
	assert.Equal(t, res.Completed, len(appts.ByStatus(models.AppointmentCompleted)))
}

func TestEveryOrderHasConsistentTotals(t *testing.T) {
	g, orders, _ := newTestGenerator(t)
	g.SetConcurrency(2)
	g.SetOrdersPerWorker(3)
	g.Run()

	for _, order := range orders.All() {
		require.NotEmpty(t, order.Items)
		var sum float64
		for _, line := range order.Items {
			require.Greater(t, line.Quantity, 0)
			sum += line.Price * float64(line.Quantity)
		}
		assert.InDelta(t, sum, order.TotalAmount, 1e-9)
		require.NotEmpty(t, order.StatusHistory)
	}
}

func TestSettersIgnoreNonPositiveValues(t *testing.T) {
	g, _, _ := newTestGenerator(t)

	g.SetConcurrency(0)
	g.SetOrdersPerWorker(-1)
	g.SetConcurrency(1)
	g.SetOrdersPerWorker(2)

	res := g.Run()
	assert.Equal(t, 2, res.OrdersCreated)
}
