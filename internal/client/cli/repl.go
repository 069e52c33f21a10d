package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	LogoutAll(ctx context.Context, args []string) error
	Me(ctx context.Context, args []string) error
	ChangePassword(ctx context.Context, args []string) error
	DeleteAccount(ctx context.Context, args []string) error
	Ping(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Get(ctx context.Context, args []string) error
	SetDone(ctx context.Context, args []string, done bool) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
}

const (
	guestHelp = "Available commands: register, login, ping, exit"
	userHelp  = "Available commands: add <text>, (l)ist, get <id>, done <id>, undone <id>, edit <id> <text>, " +
		"delete <id>, me, passwd, logout, logout-all, delete-account, ping, exit"
)

// runREPL reads commands from scanner until EOF or "exit"/"quit" and
// dispatches them to a. Commands that need a session are refused while
// logged out. Handler errors are reported by the handlers themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, w io.Writer, scanner *bufio.Scanner) {
	for {
		fmt.Fprintf(w, "todo (%s)> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, userHelp)
			} else {
				fmt.Fprintln(w, guestHelp)
			}
			continue
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		case "register":
			_ = a.Register(ctx, args)
			continue
		case "login":
			_ = a.Login(ctx, args)
			continue
		case "ping":
			_ = a.Ping(ctx, args)
			continue
		}

		if !a.isLoggedIn() {
			if isUserCommand(cmd) {
				fmt.Fprintln(w, "Please login first")
			} else {
				fmt.Fprintln(w, "Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "add":
			_ = a.Add(ctx, textArgs(line, 1))
		case "l", "list":
			_ = a.List(ctx, args)
		case "get":
			_ = a.Get(ctx, args)
		case "done":
			_ = a.SetDone(ctx, args, true)
		case "undone":
			_ = a.SetDone(ctx, args, false)
		case "edit":
			_ = a.Edit(ctx, textArgs(line, 2))
		case "delete", "rm":
			_ = a.Delete(ctx, args)
		case "me":
			_ = a.Me(ctx, args)
		case "passwd":
			_ = a.ChangePassword(ctx, args)
		case "logout":
			_ = a.Logout(ctx, args)
		case "logout-all":
			_ = a.LogoutAll(ctx, args)
		case "delete-account":
			_ = a.DeleteAccount(ctx, args)
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

// textArgs keeps the first n-1 tokens after the command and returns the rest
// of the raw line as a single trailing argument, so free text keeps its
// inner spacing.
func textArgs(line string, n int) []string {
	rest := strings.TrimLeft(line, " \t")
	var args []string
	for i := 0; i < n; i++ {
		end := strings.IndexAny(rest, " \t")
		if end < 0 {
			if i > 0 && rest != "" {
				args = append(args, rest)
			}
			return args
		}
		if i > 0 {
			args = append(args, rest[:end])
		}
		rest = strings.TrimLeft(rest[end:], " \t")
	}
	if rest = strings.TrimRight(rest, " \t"); rest != "" {
		args = append(args, rest)
	}
	return args
}

func isUserCommand(cmd string) bool {
	switch cmd {
	case "add", "l", "list", "get", "done", "undone", "edit", "delete", "rm",
		"me", "passwd", "logout", "logout-all", "delete-account":
		return true
	}
	return false
}
