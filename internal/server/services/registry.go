package services

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/sessions"
)

// SessionRegistry is the durable set of currently valid tokens per user.
// A token that decodes but is not in the registry has been revoked.
type SessionRegistry struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
}

func NewSessionRegistry(db dbx.DBTX, m repomanager.RepositoryManager) *SessionRegistry {
	return &SessionRegistry{db: db, repomanager: m}
}

// In returns the registry's repository bound to tx, for use inside a
// transaction started by another service.
func (r *SessionRegistry) In(tx dbx.DBTX) sessions.Repository {
	return r.repomanager.Sessions(tx)
}

func (r *SessionRegistry) Add(ctx context.Context, userID, scope, token string) error {
	return r.In(r.db).Add(ctx, userID, scope, token)
}

func (r *SessionRegistry) Contains(ctx context.Context, userID, scope, token string) (bool, error) {
	return r.In(r.db).Contains(ctx, userID, scope, token)
}

func (r *SessionRegistry) RemoveOne(ctx context.Context, userID, token string) error {
	return r.In(r.db).RemoveOne(ctx, userID, token)
}

func (r *SessionRegistry) RemoveAll(ctx context.Context, userID string) error {
	return r.In(r.db).RemoveAll(ctx, userID)
}
