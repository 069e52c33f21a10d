// Package todos stores owned records. Every read and write is scoped to the
// creator in SQL: a record of another user is indistinguishable from an
// absent one and yields common.ErrorNotFound.
package todos

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	List(ctx context.Context, creatorID string) ([]*models.Todo, error)
	Get(ctx context.Context, id, creatorID string) (*models.Todo, error)
	// Update applies patch. Unless patch sets Completed to true, the record
	// ends up not completed with no CompletedAt.
	Update(ctx context.Context, id, creatorID string, patch models.TodoPatch) (*models.Todo, error)
	// Delete removes the record and returns it as it was.
	Delete(ctx context.Context, id, creatorID string) (*models.Todo, error)
}
