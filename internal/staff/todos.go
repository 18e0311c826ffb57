package staff

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"wolkecarwash/internal/ids"
	"wolkecarwash/internal/models"
	"wolkecarwash/internal/store"
)

// Todo list filters.
const (
	FilterAll       = "all"
	FilterActive    = "active"
	FilterCompleted = "completed"
)

// Todos owns the carwash_todos collection.
type Todos struct {
	store  store.Store
	logger *zap.Logger

	mu   sync.Mutex
	list []models.Todo
}

// NewTodos loads the todo list from the store.
func NewTodos(s store.Store, logger *zap.Logger) *Todos {
	return &Todos{
		store:  s,
		logger: logger,
		list:   store.LoadOr(s, logger, store.KeyTodos, []models.Todo{}),
	}
}

func (t *Todos) save() error {
	if err := t.store.Save(store.KeyTodos, t.list); err != nil {
		return fmt.Errorf("saving todos: %w", err)
	}
	return nil
}

// Add appends a note. Blank text is rejected silently (no note created)
// and reported with an empty id.
func (t *Todos) Add(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	todo := models.Todo{
		ID:        ids.New("todo"),
		Text:      text,
		CreatedAt: time.Now(),
	}
	t.list = append(t.list, todo)
	return todo.ID, t.save()
}

// Toggle flips the completed flag of the given note.
func (t *Todos) Toggle(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.list {
		if t.list[i].ID == id {
			t.list[i].Completed = !t.list[i].Completed
			return t.save()
		}
	}
	return fmt.Errorf("todo %q: %w", id, ErrNotFound)
}

// Edit replaces the text of the given note.
func (t *Todos) Edit(id, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.list {
		if t.list[i].ID == id {
			t.list[i].Text = text
			return t.save()
		}
	}
	return fmt.Errorf("todo %q: %w", id, ErrNotFound)
}

// Delete removes the given note.
func (t *Todos) Delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.list {
		if t.list[i].ID == id {
			t.list = append(t.list[:i], t.list[i+1:]...)
			return t.save()
		}
	}
	return fmt.Errorf("todo %q: %w", id, ErrNotFound)
}

// ClearCompleted drops every completed note.
func (t *Todos) ClearCompleted() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.list[:0]
	for _, todo := range t.list {
		if !todo.Completed {
			kept = append(kept, todo)
		}
	}
	t.list = kept
	return t.save()
}

// Filtered returns the notes matching the filter: all, active or
// completed. Unknown filters behave like all.
func (t *Todos) Filtered(filter string) []models.Todo {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []models.Todo
	for _, todo := range t.list {
		switch filter {
		case FilterActive:
			if todo.Completed {
				continue
			}
		case FilterCompleted:
			if !todo.Completed {
				continue
			}
		}
		out = append(out, todo)
	}
	return out
}
