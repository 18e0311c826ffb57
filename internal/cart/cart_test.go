package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wolkecarwash/internal/models"
	"wolkecarwash/internal/store"
)

func newTestCart(t *testing.T) (*Cart, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	c := New(mem, zap.NewNop())

	// Deterministic, strictly increasing addedAt stamps.
	var tick int64
	c.now = func() int64 {
		tick++
		return tick
	}
	return c, mem
}

func product(id string, price float64) models.CartItem {
	return models.CartItem{ID: id, Name: id, Price: price, Kind: models.KindProduct}
}

func washPackage(id string, price float64) models.CartItem {
	return models.CartItem{ID: id, Name: id, Price: price, Kind: models.KindPackage}
}

func TestAddItemMergesSameProduct(t *testing.T) {
	c, _ := newTestCart(t)

	require.NoError(t, c.AddItem(product("p1", 10), 1))
	require.NoError(t, c.AddItem(product("p1", 10), 2))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, c.TotalItems())
	assert.InDelta(t, 30.0, c.TotalPrice(), 1e-9)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	c, _ := newTestCart(t)

	require.NoError(t, c.AddItem(product("p1", 5), 0))
	assert.Equal(t, 1, c.TotalItems())
}

func TestSecondPackageRejected(t *testing.T) {
	c, _ := newTestCart(t)

	require.NoError(t, c.AddItem(washPackage("premium", 18), 1))
	err := c.AddItem(washPackage("classic", 14), 1)
	require.ErrorIs(t, err, ErrPackageInCart)

	assert.Len(t, c.Items(), 1)
	assert.True(t, c.HasPackage())
}

func TestPackageAndProductsCoexist(t *testing.T) {
	c, _ := newTestCart(t)

	require.NoError(t, c.AddItem(washPackage("premium", 18), 1))
	require.NoError(t, c.AddItem(product("p1", 10), 2))

	assert.Equal(t, 3, c.TotalItems())
	assert.InDelta(t, 38.0, c.TotalPrice(), 1e-9)
}

func TestDecreaseRemovesLineAtOne(t *testing.T) {
	c, _ := newTestCart(t)

	require.NoError(t, c.AddItem(product("p1", 10), 2))
	line := c.Items()[0]

	require.NoError(t, c.Decrease("p1", line.AddedAt))
	require.NoError(t, c.Decrease("p1", line.AddedAt))

	// No zero-quantity line left behind.
	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.TotalItems())
}

func TestIncreaseAndDecrease(t *testing.T) {
	c, _ := newTestCart(t)

	require.NoError(t, c.AddItem(product("p1", 2.5), 1))
	line := c.Items()[0]

	require.NoError(t, c.Increase("p1", line.AddedAt))
	require.NoError(t, c.Increase("p1", line.AddedAt))
	assert.Equal(t, 3, c.TotalItems())

	require.NoError(t, c.Decrease("p1", line.AddedAt))
	assert.Equal(t, 2, c.TotalItems())
	assert.InDelta(t, 5.0, c.TotalPrice(), 1e-9)
}

func TestRemoveMatchesBothKeys(t *testing.T) {
	c, _ := newTestCart(t)

	require.NoError(t, c.AddItem(product("p1", 10), 1))
	line := c.Items()[0]

	// Wrong addedAt: no-op.
	require.NoError(t, c.Remove("p1", line.AddedAt+999))
	assert.Len(t, c.Items(), 1)

	require.NoError(t, c.Remove("p1", line.AddedAt))
	assert.Empty(t, c.Items())
}

func TestTotalsTrackAnyMutationSequence(t *testing.T) {
	c, _ := newTestCart(t)

	require.NoError(t, c.AddItem(product("p1", 10), 2))
	require.NoError(t, c.AddItem(product("p2", 4), 1))
	require.NoError(t, c.AddItem(product("p1", 10), 1))
	p2 := c.Items()[1]
	require.NoError(t, c.Increase("p2", p2.AddedAt))
	require.NoError(t, c.Decrease("p2", p2.AddedAt))

	sum := 0
	for _, it := range c.Items() {
		require.Greater(t, it.Quantity, 0)
		sum += it.Quantity
	}
	assert.Equal(t, sum, c.TotalItems())
	assert.InDelta(t, 34.0, c.TotalPrice(), 1e-9)
}

func TestClear(t *testing.T) {
	c, _ := newTestCart(t)

	require.NoError(t, c.AddItem(product("p1", 10), 2))
	require.NoError(t, c.Clear())
	assert.Empty(t, c.Items())
	assert.Zero(t, c.TotalItems())
	assert.Zero(t, c.TotalPrice())
}

func TestCartPersistsAcrossReload(t *testing.T) {
	c, mem := newTestCart(t)

	require.NoError(t, c.AddItem(product("p1", 10), 2))
	require.NoError(t, c.AddItem(washPackage("premium", 18), 1))

	reloaded := New(mem, zap.NewNop())
	assert.Equal(t, c.Items(), reloaded.Items())
	assert.Equal(t, 3, reloaded.TotalItems())
}

func TestCorruptCartFallsBackToEmpty(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, mem.SaveRaw(store.KeyCart, []byte("{not json")))

	c := New(mem, zap.NewNop())
	assert.Empty(t, c.Items())
}
