package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wolkecarwash/internal/catalog"
	"wolkecarwash/internal/customers"
	"wolkecarwash/internal/inventory"
	"wolkecarwash/internal/lifecycle"
	"wolkecarwash/internal/marketing"
	"wolkecarwash/internal/models"
	"wolkecarwash/internal/store"
	"wolkecarwash/internal/weather"
)

func newTestDashboard(t *testing.T) (*Service, *lifecycle.Orders, *lifecycle.Appointments) {
	t.Helper()
	mem := store.NewMemory()
	logger := zap.NewNop()

	cat := catalog.New(mem, logger)
	orders := lifecycle.NewOrders(mem, cat, logger)
	appts := lifecycle.NewAppointments(mem, cat, logger)
	cust := customers.New(mem, logger)
	inv := inventory.New(mem, logger)
	mkt := marketing.New(mem, logger)

	return New(orders, appts, cust, inv, mkt), orders, appts
}

func TestSummaryOnFreshData(t *testing.T) {
	dash, _, _ := newTestDashboard(t)

	sum := dash.Summary()
	assert.Zero(t, sum.PendingOrders)
	assert.Zero(t, sum.Revenue)
	assert.Zero(t, sum.PendingAppointments)
	assert.Equal(t, 5, sum.Customers)
	assert.Equal(t, 2, sum.LowStockItems)
	assert.Equal(t, weather.DemandMedium, sum.StaffingAdvice.Demand)
}

func TestSummaryCountsOrders(t *testing.T) {
	dash, orders, appts := newTestDashboard(t)

	_, err := orders.Create(nil, models.OrderCustomer{Name: "A"}, 10)
	require.NoError(t, err)

	confirmed, err := orders.Create(nil, models.OrderCustomer{Name: "B"}, 20)
	require.NoError(t, err)
	require.NoError(t, orders.UpdateStatus(confirmed, models.OrderConfirmed, ""))

	delivered, err := orders.Create(nil, models.OrderCustomer{Name: "C"}, 31.50)
	require.NoError(t, err)
	require.NoError(t, orders.UpdateStatus(delivered, models.OrderConfirmed, ""))
	require.NoError(t, orders.UpdateStatus(delivered, models.OrderDelivered, ""))

	cancelled, err := orders.Create(nil, models.OrderCustomer{Name: "D"}, 5)
	require.NoError(t, err)
	require.NoError(t, orders.Cancel(cancelled, ""))

	_, err = appts.Create(lifecycle.BookingForm{Name: "E", Date: "2026-09-01", Time: "10:00"}, "standard")
	require.NoError(t, err)

	sum := dash.Summary()
	assert.Equal(t, 1, sum.PendingOrders)
	assert.Equal(t, 1, sum.ConfirmedOrders)
	assert.Equal(t, 1, sum.DeliveredOrders)
	assert.Equal(t, 1, sum.CancelledOrders)
	// Only delivered orders count toward revenue.
	assert.InDelta(t, 31.50, sum.Revenue, 1e-9)
	assert.Equal(t, 1, sum.PendingAppointments)
}
