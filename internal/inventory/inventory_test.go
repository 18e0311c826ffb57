package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wolkecarwash/internal/models"
	"wolkecarwash/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	return New(mem, zap.NewNop()), mem
}

func TestDefaultStock(t *testing.T) {
	svc, _ := newTestService(t)

	all := svc.All()
	require.Len(t, all, 5)
	assert.Equal(t, "Autoshampoo Premium", all[0].Name)
}

func TestLowStockBoundary(t *testing.T) {
	svc, _ := newTestService(t)

	// inv-2 sits exactly at its minimum, inv-5 below it.
	low := svc.LowStock()
	require.Len(t, low, 2)
	assert.Equal(t, "inv-2", low[0].ID)
	assert.Equal(t, "inv-5", low[1].ID)

	item, err := svc.Get("inv-2")
	require.NoError(t, err)
	assert.True(t, item.LowStock())

	// One unit above the minimum clears the flag.
	item.CurrentStock = item.MinStock + 1
	require.NoError(t, svc.Update("inv-2", item))
	assert.Len(t, svc.LowStock(), 1)
}

func TestAddClampsNegatives(t *testing.T) {
	svc, _ := newTestService(t)

	id, err := svc.Add(models.InventoryItem{Name: "Trockenwachs", CurrentStock: -3, MinStock: -1, Price: -5})
	require.NoError(t, err)

	item, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 0, item.CurrentStock)
	assert.Equal(t, 0, item.MinStock)
	assert.Zero(t, item.Price)
}

func TestRestock(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.Restock("inv-5", 50))

	item, err := svc.Get("inv-5")
	require.NoError(t, err)
	assert.Equal(t, 50, item.CurrentStock)
	assert.NotEqual(t, "2023-11-02", item.LastOrdered)
	assert.False(t, item.LowStock())

	// Negative restock floors at zero.
	require.NoError(t, svc.Restock("inv-5", -10))
	item, _ = svc.Get("inv-5")
	assert.Equal(t, 0, item.CurrentStock)

	require.ErrorIs(t, svc.Restock("inv-missing", 5), ErrNotFound)
}

func TestUpdateAndDelete(t *testing.T) {
	svc, mem := newTestService(t)

	item, err := svc.Get("inv-3")
	require.NoError(t, err)
	item.Price = 24.90
	require.NoError(t, svc.Update("inv-3", item))

	item, _ = svc.Get("inv-3")
	assert.InDelta(t, 24.90, item.Price, 1e-9)

	require.NoError(t, svc.Delete("inv-4"))
	_, err = svc.Get("inv-4")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, svc.Delete("inv-4"), ErrNotFound)

	again := New(mem, zap.NewNop())
	assert.Len(t, again.All(), 4)
}
