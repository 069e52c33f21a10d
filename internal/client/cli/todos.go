package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/todokeeper/internal/client/models"
)

var errUsage = errors.New("usage")

func (a *App) usage(text string) error {
	a.printf("Usage: %s\n", text)
	return errUsage
}

func (a *App) printTodo(t *models.Todo) {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	line := "[" + mark + "] " + t.ID + "  " + t.Text
	if t.CompletedAt != nil {
		line += "  (done " + t.CompletedAt.Local().Format("2006-01-02 15:04") + ")"
	}
	a.printf("%s\n", line)
}

// Add creates a todo from the rest of the command line.
func (a *App) Add(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		return a.usage("add <text>")
	}
	t, err := a.client.CreateTodo(ctx, text)
	if err != nil {
		return a.report(err)
	}
	a.printTodo(t)
	return nil
}

func (a *App) List(ctx context.Context, _ []string) error {
	todos, err := a.client.ListTodos(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(todos) == 0 {
		a.printf("No todos\n")
		return nil
	}
	for _, t := range todos {
		a.printTodo(t)
	}
	return nil
}

func (a *App) Get(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("get <id>")
	}
	t, err := a.client.GetTodo(ctx, args[0])
	if err != nil {
		return a.report(err)
	}
	a.printTodo(t)
	return nil
}

// SetDone marks a todo completed or not completed.
func (a *App) SetDone(ctx context.Context, args []string, done bool) error {
	if len(args) != 1 {
		if done {
			return a.usage("done <id>")
		}
		return a.usage("undone <id>")
	}
	t, err := a.client.UpdateTodo(ctx, args[0], nil, &done)
	if err != nil {
		return a.report(err)
	}
	a.printTodo(t)
	return nil
}

// Edit replaces the text of a todo. The server clears completion on any
// update that does not set it, so the current state is sent along.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return a.usage("edit <id> <text>")
	}
	id := args[0]
	text := strings.Join(args[1:], " ")

	current, err := a.client.GetTodo(ctx, id)
	if err != nil {
		return a.report(err)
	}
	completed := current.Completed

	t, err := a.client.UpdateTodo(ctx, id, &text, &completed)
	if err != nil {
		return a.report(err)
	}
	a.printTodo(t)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("delete <id>")
	}
	t, err := a.client.DeleteTodo(ctx, args[0])
	if err != nil {
		return a.report(err)
	}
	a.printf("Deleted %s\n", t.ID)
	return nil
}
