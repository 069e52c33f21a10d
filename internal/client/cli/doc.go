// Package cli provides the interactive todokeeper command-line client.
//
// It wires configuration, the gRPC client and a REPL. The session token is
// kept in a file between runs, so a user who logged in once stays logged in
// until they log out or the server revokes the session.
//
// Commands:
//   - register / login / logout / logout-all / me / passwd / delete-account
//   - add <text>, list, get <id>, done <id>, undone <id>, edit <id> <text>, delete <id>
//   - ping, help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
