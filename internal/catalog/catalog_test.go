package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wolkecarwash/internal/models"
	"wolkecarwash/internal/store"
)

func newTestCatalog(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	return New(mem, zap.NewNop()), mem
}

func TestDefaultsOnFirstStart(t *testing.T) {
	svc, _ := newTestCatalog(t)

	pkgs := svc.Packages()
	require.Len(t, pkgs, 4)
	assert.Equal(t, "standard", pkgs[0].ID)
	assert.Equal(t, "premium", pkgs[3].ID)
	assert.InDelta(t, 18.0, pkgs[3].Price, 1e-9)

	products := svc.Products()
	require.Len(t, products, 4)
	assert.Equal(t, "Autoshampoo", products[0].Name)
	assert.Equal(t, 25, products[0].Stock)

	assert.Len(t, svc.Slides(), 3)
	assert.Equal(t, "Willkommen bei Wolke Carwash", svc.About().WelcomeMessage)
}

func TestStoredDataWinsOverDefaults(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, mem.Save(store.KeyData, models.SiteData{
		WashPackages: []models.WashPackage{{ID: "solo", Name: "SOLO", Price: 7}},
	}))

	svc := New(mem, zap.NewNop())
	pkgs := svc.Packages()
	require.Len(t, pkgs, 1)
	assert.Equal(t, "solo", pkgs[0].ID)
	assert.Empty(t, svc.Products())
}

func TestCorruptDataFallsBackToDefaults(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, mem.SaveRaw(store.KeyData, []byte("<html>")))

	svc := New(mem, zap.NewNop())
	assert.Len(t, svc.Packages(), 4)
}

func TestPackageCRUD(t *testing.T) {
	svc, _ := newTestCatalog(t)

	id, err := svc.AddPackage(models.WashPackage{Name: "WINTER", Price: 21})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	pkg, err := svc.Package(id)
	require.NoError(t, err)
	assert.Equal(t, "WINTER", pkg.Name)
	assert.NotNil(t, pkg.Features)

	pkg.Price = 23
	require.NoError(t, svc.UpdatePackage(id, pkg))
	pkg, _ = svc.Package(id)
	assert.InDelta(t, 23.0, pkg.Price, 1e-9)

	require.NoError(t, svc.DeletePackage(id))
	_, err = svc.Package(id)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, svc.UpdatePackage("nope", pkg), ErrNotFound)
	require.ErrorIs(t, svc.DeletePackage("nope"), ErrNotFound)
}

func TestProductCRUD(t *testing.T) {
	svc, _ := newTestCatalog(t)

	id, err := svc.AddProduct(models.Product{Name: "Insektenentferner", Price: 8.49, Stock: 12})
	require.NoError(t, err)

	p, err := svc.Product(id)
	require.NoError(t, err)
	assert.Equal(t, 12, p.Stock)

	p.Stock = 40
	require.NoError(t, svc.UpdateProduct(id, p))
	p, _ = svc.Product(id)
	assert.Equal(t, 40, p.Stock)

	require.NoError(t, svc.DeleteProduct(id))
	_, err = svc.Product(id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDecrementStock(t *testing.T) {
	svc, _ := newTestCatalog(t)

	require.NoError(t, svc.DecrementStock("product-1", 5))
	p, _ := svc.Product("product-1")
	assert.Equal(t, 20, p.Stock)

	// Never goes negative.
	require.NoError(t, svc.DecrementStock("product-1", 100))
	p, _ = svc.Product("product-1")
	assert.Equal(t, 0, p.Stock)

	// Unknown ids are ignored.
	require.NoError(t, svc.DecrementStock("product-unknown", 3))
}

func TestSlideCRUD(t *testing.T) {
	svc, _ := newTestCatalog(t)

	id, err := svc.AddSlide(models.Slide{Title: "Neueröffnung", URL: "https://example.com/x.jpg"})
	require.NoError(t, err)
	assert.Len(t, svc.Slides(), 4)

	require.NoError(t, svc.UpdateSlide(id, models.Slide{Title: "Jubiläum"}))
	slides := svc.Slides()
	assert.Equal(t, "Jubiläum", slides[3].Title)
	assert.Equal(t, id, slides[3].ID)

	require.NoError(t, svc.DeleteSlide(id))
	assert.Len(t, svc.Slides(), 3)
	require.ErrorIs(t, svc.DeleteSlide(id), ErrNotFound)
}

func TestUpdateAbout(t *testing.T) {
	svc, mem := newTestCatalog(t)

	about := svc.About()
	about.WelcomeMessage = "Herzlich willkommen"
	require.NoError(t, svc.UpdateAbout(about))

	// The edit survives a reload from the same store.
	again := New(mem, zap.NewNop())
	assert.Equal(t, "Herzlich willkommen", again.About().WelcomeMessage)
}

func TestReset(t *testing.T) {
	svc, _ := newTestCatalog(t)

	require.NoError(t, svc.DeletePackage("premium"))
	_, err := svc.AddProduct(models.Product{Name: "Extra"})
	require.NoError(t, err)

	require.NoError(t, svc.Reset())
	assert.Len(t, svc.Packages(), 4)
	assert.Len(t, svc.Products(), 4)
}

func TestMutationsPersist(t *testing.T) {
	svc, mem := newTestCatalog(t)

	require.NoError(t, svc.DeletePackage("standard"))

	again := New(mem, zap.NewNop())
	assert.Len(t, again.Packages(), 3)
	_, err := again.Package("standard")
	require.ErrorIs(t, err, ErrNotFound)
}
