package client

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/client/models"
)

type Client interface {
	Close() error
	LoggedIn() bool
	Ping(ctx context.Context) error

	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Me(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	LogoutAll(ctx context.Context) error
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	DeleteAccount(ctx context.Context, password string) error

	CreateTodo(ctx context.Context, text string) (*models.Todo, error)
	ListTodos(ctx context.Context) ([]*models.Todo, error)
	GetTodo(ctx context.Context, id string) (*models.Todo, error)
	UpdateTodo(ctx context.Context, id string, text *string, completed *bool) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id string) (*models.Todo, error)
}
