package marketing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wolkecarwash/internal/models"
	"wolkecarwash/internal/store"
)

func fixedDay(day string) func() time.Time {
	t, _ := time.Parse("2006-01-02", day)
	return func() time.Time { return t }
}

func newTestService(t *testing.T, day string) (*Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	svc := New(mem, zap.NewNop())
	svc.now = fixedDay(day)
	return svc, mem
}

func TestStatusFor(t *testing.T) {
	promo := models.Promotion{StartDate: "2024-01-01", EndDate: "2024-01-31"}

	cases := []struct {
		day  string
		want string
	}{
		{"2023-12-31", StatusPlanned},
		{"2024-01-01", StatusActive}, // first day inclusive
		{"2024-01-15", StatusActive},
		{"2024-01-31", StatusActive}, // last day inclusive
		{"2024-02-01", StatusExpired},
	}
	for _, tc := range cases {
		today, err := time.Parse("2006-01-02", tc.day)
		require.NoError(t, err)
		assert.Equalf(t, tc.want, StatusFor(promo, today), "on %s", tc.day)
	}
}

func TestStatusForUnparsableDates(t *testing.T) {
	today := time.Now()
	assert.Equal(t, StatusExpired, StatusFor(models.Promotion{StartDate: "bald", EndDate: "2024-01-31"}, today))
	assert.Equal(t, StatusExpired, StatusFor(models.Promotion{StartDate: "2024-01-01", EndDate: ""}, today))
}

func TestDefaultCampaignStatuses(t *testing.T) {
	svc, _ := newTestService(t, "2023-12-15")

	all := svc.All()
	require.Len(t, all, 4)

	byID := map[string]string{}
	for _, p := range all {
		byID[p.ID] = p.Status
	}
	assert.Equal(t, StatusActive, byID["promo-1"])  // Winterspezial running
	assert.Equal(t, StatusActive, byID["promo-2"])  // Neukunden running
	assert.Equal(t, StatusExpired, byID["promo-3"]) // Happy Monday over
	assert.Equal(t, StatusPlanned, byID["promo-4"]) // Sommeraktion ahead
}

func TestStatusesAgeWithTheClock(t *testing.T) {
	svc, _ := newTestService(t, "2024-07-01")

	active := svc.ByStatus(StatusActive)
	require.Len(t, active, 1)
	assert.Equal(t, "promo-4", active[0].ID)

	a, planned, expired := svc.Counts()
	assert.Equal(t, 1, a)
	assert.Equal(t, 0, planned)
	assert.Equal(t, 3, expired)
}

func TestAddDerivesStatus(t *testing.T) {
	svc, _ := newTestService(t, "2024-03-10")

	id, err := svc.Add(models.Promotion{
		Name: "Frühjahrsputz", Code: "SPRING24", Discount: 12,
		StartDate: "2024-03-01", EndDate: "2024-03-31",
		Status: StatusExpired, // caller's value is ignored
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	for _, p := range svc.All() {
		if p.ID == id {
			assert.Equal(t, StatusActive, p.Status)
			return
		}
	}
	t.Fatalf("promotion %s not found", id)
}

func TestUpdateRederivesStatus(t *testing.T) {
	svc, _ := newTestService(t, "2024-03-10")

	promos := svc.All()
	p := promos[0]
	p.StartDate = "2024-04-01"
	p.EndDate = "2024-04-30"
	require.NoError(t, svc.Update(p.ID, p))

	planned := svc.ByStatus(StatusPlanned)
	require.Len(t, planned, 1)
	assert.Equal(t, p.ID, planned[0].ID)

	require.ErrorIs(t, svc.Update("promo-missing", p), ErrNotFound)
}

func TestDeleteAndByStatusAll(t *testing.T) {
	svc, mem := newTestService(t, "2023-12-15")

	require.NoError(t, svc.Delete("promo-3"))
	assert.Len(t, svc.ByStatus("All"), 3)
	assert.Len(t, svc.ByStatus(""), 3)
	require.ErrorIs(t, svc.Delete("promo-3"), ErrNotFound)

	again := New(mem, zap.NewNop())
	assert.Len(t, again.All(), 3)
}
