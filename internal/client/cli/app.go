package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/todokeeper/internal/client/client"
	"github.com/dmitrijs2005/todokeeper/internal/client/config"
)

type App struct {
	config    *config.Config
	client    client.Client
	userEmail string
	reader    *bufio.Reader
	out       io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewTodoKeeperClientService(c.ServerEndpointAddr, client.NewFileTokenStore(c.TokenFile), c.RequestTimeout)
	if err != nil {
		return nil, err
	}
	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, api client.Client, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: api, reader: bufio.NewReader(in), out: out}
}

func (a *App) isLoggedIn() bool {
	return a.client.LoggedIn()
}

func (a *App) getStatus() string {
	switch {
	case a.isLoggedIn() && a.userEmail != "":
		return a.userEmail
	case a.isLoggedIn():
		return "logged in"
	default:
		return "guest"
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// Run restores the session, if any, and runs the REPL until the user exits
// or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	a.printf("Welcome to todokeeper CLI (type 'help' for commands)\n")

	if a.isLoggedIn() {
		if u, err := a.client.Me(ctx); err == nil {
			a.userEmail = u.Email
		}
	}

	runREPL(ctx, a, a.getStatus, a.out, bufio.NewScanner(a.reader))
}
