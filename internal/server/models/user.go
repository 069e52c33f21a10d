// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is a registered identity. Password is transient: it carries a new
// plaintext from the caller to the save path, which hashes it into
// PasswordHash and clears it. It is never persisted or returned.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Password     string
	CreatedAt    time.Time
}
