package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/oklog/ulid/v2"
)

type Todos struct {
	mu    sync.RWMutex
	items map[string]models.Todo
	now   func() time.Time
}

func NewTodos() *Todos {
	return &Todos{items: map[string]models.Todo{}, now: time.Now}
}

func (r *Todos) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if todo.ID == "" {
		todo.ID = ulid.Make().String()
	}
	if todo.Completed && todo.CompletedAt == nil {
		ms := r.now().UnixMilli()
		todo.CompletedAt = &ms
	}
	if !todo.Completed {
		todo.CompletedAt = nil
	}
	todo.CreatedAt = r.now()
	todo.UpdatedAt = todo.CreatedAt

	r.items[todo.ID] = clone(*todo)
	return todo, nil
}

func (r *Todos) List(ctx context.Context, creatorID string) ([]*models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Todo, 0)
	for _, t := range r.items {
		if t.CreatorID == creatorID {
			c := clone(t)
			result = append(result, &c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *Todos) Get(ctx context.Context, id, creatorID string) (*models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.owned(id, creatorID)
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := clone(t)
	return &c, nil
}

func (r *Todos) Update(ctx context.Context, id, creatorID string, patch models.TodoPatch) (*models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.owned(id, creatorID)
	if !ok {
		return nil, common.ErrorNotFound
	}

	if patch.Text != nil {
		t.Text = *patch.Text
	}
	t.Completed = patch.Completed != nil && *patch.Completed
	t.CompletedAt = nil
	if t.Completed {
		ms := r.now().UnixMilli()
		t.CompletedAt = &ms
	}
	t.UpdatedAt = r.now()

	r.items[id] = t
	c := clone(t)
	return &c, nil
}

func (r *Todos) Delete(ctx context.Context, id, creatorID string) (*models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.owned(id, creatorID)
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(r.items, id)
	return &t, nil
}

// owned must be called with mu held.
func (r *Todos) owned(id, creatorID string) (models.Todo, bool) {
	if _, err := ulid.ParseStrict(id); err != nil {
		return models.Todo{}, false
	}
	t, ok := r.items[id]
	if !ok || t.CreatorID != creatorID {
		return models.Todo{}, false
	}
	return t, true
}

func clone(t models.Todo) models.Todo {
	if t.CompletedAt != nil {
		v := *t.CompletedAt
		t.CompletedAt = &v
	}
	return t
}
