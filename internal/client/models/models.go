// Package models defines the client-side view of server records.
package models

import "time"

type User struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

type Todo struct {
	ID          string
	Text        string
	Completed   bool
	CompletedAt *time.Time
}
