package todos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/oklog/ulid/v2"
)

const columns = `id, creator_id, text, completed, completed_at, created_at, updated_at`

// PostgresRepository implements todo storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db, now: time.Now}
}

// Create inserts todo. An empty ID is filled with a new ULID, so listing in
// id order is listing in creation order.
func (r *PostgresRepository) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
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

	query := `
		INSERT INTO todos (id, creator_id, text, completed, completed_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		todo.ID, todo.CreatorID, todo.Text, todo.Completed, todo.CompletedAt,
	).Scan(&todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return todo, nil
}

// List returns all todos of creatorID, oldest first.
func (r *PostgresRepository) List(ctx context.Context, creatorID string) ([]*models.Todo, error) {
	query := `SELECT ` + columns + ` FROM todos
		WHERE creator_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, creatorID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Todo, 0)
	for rows.Next() {
		item, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id, creatorID string) (*models.Todo, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}

	query := `SELECT ` + columns + ` FROM todos
		WHERE id = $1 AND creator_id = $2
	`

	return scanOne(r.db.QueryRowContext(ctx, query, id, creatorID))
}

func (r *PostgresRepository) Update(ctx context.Context, id, creatorID string, patch models.TodoPatch) (*models.Todo, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}

	completed := patch.Completed != nil && *patch.Completed
	var completedAt *int64
	if completed {
		ms := r.now().UnixMilli()
		completedAt = &ms
	}

	query := `
		UPDATE todos SET
			text = COALESCE($3, text),
			completed = $4,
			completed_at = $5,
			updated_at = now()
		WHERE id = $1 AND creator_id = $2
		RETURNING ` + columns

	return scanOne(r.db.QueryRowContext(ctx, query, id, creatorID, patch.Text, completed, completedAt))
}

func (r *PostgresRepository) Delete(ctx context.Context, id, creatorID string) (*models.Todo, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}

	query := `
		DELETE FROM todos
		WHERE id = $1 AND creator_id = $2
		RETURNING ` + columns

	return scanOne(r.db.QueryRowContext(ctx, query, id, creatorID))
}

// validID reports whether id is a well-formed ULID.
func validID(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(s scanner) (*models.Todo, error) {
	var (
		item        models.Todo
		completedAt sql.NullInt64
	)
	if err := s.Scan(&item.ID, &item.CreatorID, &item.Text, &item.Completed, &completedAt, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	if completedAt.Valid {
		v := completedAt.Int64
		item.CompletedAt = &v
	}
	return &item, nil
}

func scanOne(row *sql.Row) (*models.Todo, error) {
	item, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}
