package models

import "time"

// Todo is a record owned by the user who created it. CreatorID never
// changes after creation.
type Todo struct {
	ID        string
	CreatorID string
	Text      string
	Completed bool
	// CompletedAt is Unix milliseconds; set iff Completed.
	CompletedAt *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TodoPatch carries the optional fields of an update.
type TodoPatch struct {
	Text      *string
	Completed *bool
}
