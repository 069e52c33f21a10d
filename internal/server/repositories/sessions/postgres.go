package sessions

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/todokeeper/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, userID, access, token string) error {
	query :=
		`INSERT INTO sessions (user_id, access, token)
         VALUES ($1, $2, $3)
		 `

	if _, err := r.db.ExecContext(ctx, query, userID, access, token); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Contains(ctx context.Context, userID, access, token string) (bool, error) {
	query :=
		`SELECT EXISTS (
		   SELECT 1 FROM sessions
		   WHERE user_id = $1 AND access = $2 AND token = $3
		 )
		 `

	var ok bool
	if err := r.db.QueryRowContext(ctx, query, userID, access, token).Scan(&ok); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return ok, nil
}

func (r *PostgresRepository) RemoveOne(ctx context.Context, userID, token string) error {
	query := `DELETE FROM sessions WHERE user_id = $1 AND token = $2`

	if _, err := r.db.ExecContext(ctx, query, userID, token); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) RemoveAll(ctx context.Context, userID string) error {
	query := `DELETE FROM sessions WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
