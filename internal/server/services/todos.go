package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
)

// TodoService performs todo operations on behalf of a principal. Queries are
// scoped to the principal in storage, and every record that comes back is
// checked again with Authorize.
type TodoService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewTodoService(db dbx.DBTX, m repomanager.RepositoryManager, l logging.Logger) *TodoService {
	return &TodoService{
		db:          db,
		repomanager: m,
		logger:      l.With("module", "todo_service"),
	}
}

func (s *TodoService) Create(ctx context.Context, p *Principal, text string, completed bool) (*models.Todo, error) {
	if p == nil || p.User == nil {
		return nil, common.ErrorUnauthenticated
	}
	text, err := normalizeText(text)
	if err != nil {
		return nil, err
	}

	todo, err := s.repomanager.Todos(s.db).Create(ctx, &models.Todo{
		CreatorID: p.User.ID,
		Text:      text,
		Completed: completed,
	})
	if err != nil {
		return nil, collapse(ctx, s.logger, "create_todo", err)
	}
	return todo, nil
}

func (s *TodoService) List(ctx context.Context, p *Principal) ([]*models.Todo, error) {
	if p == nil || p.User == nil {
		return nil, common.ErrorUnauthenticated
	}

	items, err := s.repomanager.Todos(s.db).List(ctx, p.User.ID)
	if err != nil {
		return nil, collapse(ctx, s.logger, "list_todos", err)
	}

	result := make([]*models.Todo, 0, len(items))
	for _, t := range items {
		if Authorize(p, t) == nil {
			result = append(result, t)
		}
	}
	return result, nil
}

func (s *TodoService) Get(ctx context.Context, p *Principal, id string) (*models.Todo, error) {
	if p == nil || p.User == nil {
		return nil, common.ErrorUnauthenticated
	}

	todo, err := s.repomanager.Todos(s.db).Get(ctx, id, p.User.ID)
	if err != nil {
		return nil, collapse(ctx, s.logger, "get_todo", err)
	}
	if err := Authorize(p, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Update applies patch. Text, when given, is trimmed and must stay
// non-empty. The record ends up completed only if patch says so.
func (s *TodoService) Update(ctx context.Context, p *Principal, id string, patch models.TodoPatch) (*models.Todo, error) {
	if p == nil || p.User == nil {
		return nil, common.ErrorUnauthenticated
	}
	if patch.Text != nil {
		text, err := normalizeText(*patch.Text)
		if err != nil {
			return nil, err
		}
		patch.Text = &text
	}

	todo, err := s.repomanager.Todos(s.db).Update(ctx, id, p.User.ID, patch)
	if err != nil {
		return nil, collapse(ctx, s.logger, "update_todo", err)
	}
	if err := Authorize(p, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, p *Principal, id string) (*models.Todo, error) {
	if p == nil || p.User == nil {
		return nil, common.ErrorUnauthenticated
	}

	todo, err := s.repomanager.Todos(s.db).Delete(ctx, id, p.User.ID)
	if err != nil {
		return nil, collapse(ctx, s.logger, "delete_todo", err)
	}
	if err := Authorize(p, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func normalizeText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", common.ErrorInvalidInput
	}
	return text, nil
}
