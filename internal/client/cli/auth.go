package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/todokeeper/internal/client/client"
	"github.com/dmitrijs2005/todokeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errPasswordMismatch = errors.New("passwords do not match")

// report prints err in a user-facing form and returns it.
func (a *App) report(err error) error {
	switch {
	case err == nil:
	case errors.Is(err, client.ErrUnauthorized):
		a.userEmail = ""
		a.printf("Not logged in (session expired or revoked)\n")
	case errors.Is(err, client.ErrInvalidCredentials):
		a.printf("Invalid credentials\n")
	case errors.Is(err, client.ErrNotFound):
		a.printf("Not found\n")
	case errors.Is(err, client.ErrAlreadyExists):
		a.printf("Email already registered\n")
	case errors.Is(err, client.ErrInvalidInput):
		a.printf("Invalid input\n")
	case errors.Is(err, client.ErrUnavailable):
		a.printf("Server unavailable\n")
	default:
		a.printf("Error: %v\n", err)
	}
	return err
}

func (a *App) readCredentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

// Register prompts for an email and password, creates the account and
// signs in with it.
func (a *App) Register(ctx context.Context, _ []string) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.client.Register(ctx, email, string(password))
	if err != nil {
		return a.report(err)
	}

	a.userEmail = u.Email
	a.printf("Registered and logged in as %s\n", u.Email)
	return nil
}

// Login prompts for credentials and starts a new session.
func (a *App) Login(ctx context.Context, _ []string) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return a.report(err)
	}

	a.userEmail = u.Email
	a.printf("Logged in as %s\n", u.Email)
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.client.Logout(ctx); err != nil {
		return a.report(err)
	}
	a.userEmail = ""
	a.printf("Logged out\n")
	return nil
}

// LogoutAll ends every session of the account, on every device.
func (a *App) LogoutAll(ctx context.Context, _ []string) error {
	if err := a.client.LogoutAll(ctx); err != nil {
		return a.report(err)
	}
	a.userEmail = ""
	a.printf("Logged out everywhere\n")
	return nil
}

func (a *App) Me(ctx context.Context, _ []string) error {
	u, err := a.client.Me(ctx)
	if err != nil {
		return a.report(err)
	}
	a.userEmail = u.Email
	a.printf("%s (id %s, since %s)\n", u.Email, u.ID, u.CreatedAt.Format("2006-01-02"))
	return nil
}

// ChangePassword asks for the current password and the new one twice.
func (a *App) ChangePassword(ctx context.Context, _ []string) error {
	oldPassword, err := getPassword(a.out, "Current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPassword)

	newPassword, err := getPassword(a.out, "New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	repeat, err := getPassword(a.out, "Repeat new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(repeat)

	if string(newPassword) != string(repeat) {
		a.printf("Passwords do not match\n")
		return errPasswordMismatch
	}

	if err := a.client.ChangePassword(ctx, string(oldPassword), string(newPassword)); err != nil {
		return a.report(err)
	}
	a.printf("Password changed, other sessions were logged out\n")
	return nil
}

// DeleteAccount removes the account and every todo it owns after the user
// types the email back and confirms with the password.
func (a *App) DeleteAccount(ctx context.Context, _ []string) error {
	confirm, err := getSimpleText(a.reader, "Type your email to confirm account deletion", a.out)
	if err != nil {
		return err
	}
	if a.userEmail != "" && confirm != a.userEmail {
		a.printf("Cancelled\n")
		return nil
	}

	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.DeleteAccount(ctx, string(password)); err != nil {
		return a.report(err)
	}
	a.userEmail = ""
	a.printf("Account deleted\n")
	return nil
}

func (a *App) Ping(ctx context.Context, _ []string) error {
	if err := a.client.Ping(ctx); err != nil {
		return a.report(err)
	}
	a.printf("Server is up\n")
	return nil
}

