package staff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wolkecarwash/internal/models"
	"wolkecarwash/internal/store"
)

func TestDefaultRoster(t *testing.T) {
	emps := NewEmployees(store.NewMemory(), zap.NewNop())

	all := emps.All()
	require.Len(t, all, 5)
	assert.Equal(t, "Hans Müller", all[0].Name)
	assert.Len(t, emps.ByStatus(StatusActive), 3)
	assert.Len(t, emps.ByStatus(StatusOnVacation), 1)
	assert.Len(t, emps.ByStatus(StatusSick), 1)
}

func TestEmployeeCRUD(t *testing.T) {
	mem := store.NewMemory()
	emps := NewEmployees(mem, zap.NewNop())

	id, err := emps.Add(models.Employee{Name: "Lisa Braun", Position: "Kassierer", Shift: "Teilzeit"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	all := emps.All()
	require.Len(t, all, 6)
	// Empty status defaults to active.
	assert.Equal(t, StatusActive, all[5].Status)

	updated := all[5]
	updated.Status = StatusSick
	require.NoError(t, emps.Update(id, updated))
	assert.Len(t, emps.ByStatus(StatusSick), 2)

	require.NoError(t, emps.Delete(id))
	assert.Len(t, emps.All(), 5)
	require.ErrorIs(t, emps.Delete(id), ErrNotFound)
	require.ErrorIs(t, emps.Update(id, updated), ErrNotFound)

	// Edits survive a reload.
	again := NewEmployees(mem, zap.NewNop())
	assert.Len(t, again.All(), 5)
}

func TestTodoAddAndBlank(t *testing.T) {
	todos := NewTodos(store.NewMemory(), zap.NewNop())

	id, err := todos.Add("  Wachs nachbestellen  ")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	list := todos.Filtered(FilterAll)
	require.Len(t, list, 1)
	assert.Equal(t, "Wachs nachbestellen", list[0].Text)
	assert.False(t, list[0].Completed)

	// Whitespace-only input creates nothing.
	blank, err := todos.Add("   ")
	require.NoError(t, err)
	assert.Empty(t, blank)
	assert.Len(t, todos.Filtered(FilterAll), 1)
}

func TestTodoToggleEditDelete(t *testing.T) {
	todos := NewTodos(store.NewMemory(), zap.NewNop())

	id, err := todos.Add("Bürsten prüfen")
	require.NoError(t, err)

	require.NoError(t, todos.Toggle(id))
	assert.True(t, todos.Filtered(FilterAll)[0].Completed)
	require.NoError(t, todos.Toggle(id))
	assert.False(t, todos.Filtered(FilterAll)[0].Completed)

	require.NoError(t, todos.Edit(id, "Bürsten tauschen"))
	assert.Equal(t, "Bürsten tauschen", todos.Filtered(FilterAll)[0].Text)
	// Blank edit keeps the old text.
	require.NoError(t, todos.Edit(id, " "))
	assert.Equal(t, "Bürsten tauschen", todos.Filtered(FilterAll)[0].Text)

	require.NoError(t, todos.Delete(id))
	assert.Empty(t, todos.Filtered(FilterAll))
	require.ErrorIs(t, todos.Toggle(id), ErrNotFound)
}

func TestTodoFiltersAndClearCompleted(t *testing.T) {
	mem := store.NewMemory()
	todos := NewTodos(mem, zap.NewNop())

	_, err := todos.Add("offen")
	require.NoError(t, err)
	b, err := todos.Add("erledigt")
	require.NoError(t, err)
	require.NoError(t, todos.Toggle(b))

	assert.Len(t, todos.Filtered(FilterAll), 2)
	assert.Len(t, todos.Filtered(FilterActive), 1)
	assert.Len(t, todos.Filtered(FilterCompleted), 1)
	// Unknown filters behave like all.
	assert.Len(t, todos.Filtered("whatever"), 2)

	require.NoError(t, todos.ClearCompleted())
	list := todos.Filtered(FilterAll)
	require.Len(t, list, 1)
	assert.Equal(t, "offen", list[0].Text)

	again := NewTodos(mem, zap.NewNop())
	assert.Len(t, again.Filtered(FilterAll), 1)
}
