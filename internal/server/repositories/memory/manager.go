package memory

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/todos"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/users"
)

// Manager hands out the same in-memory repositories regardless of the DBTX
// it is given. Transactions therefore commit immediately; tests that need
// rollback semantics use sqlmock against the PostgreSQL repositories.
type Manager struct {
	UsersRepo    *Users
	SessionsRepo *Sessions
	TodosRepo    *Todos
}

func NewManager() *Manager {
	return &Manager{
		UsersRepo:    NewUsers(),
		SessionsRepo: NewSessions(),
		TodosRepo:    NewTodos(),
	}
}

func (m *Manager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *Manager) Users(dbx.DBTX) users.Repository { return m.UsersRepo }

func (m *Manager) Sessions(dbx.DBTX) sessions.Repository { return m.SessionsRepo }

func (m *Manager) Todos(dbx.DBTX) todos.Repository { return m.TodosRepo }
