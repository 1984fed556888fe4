package domain

import "time"

// Task represents a single to-do item owned by exactly one user. OwnerID is
// set at creation and never reassigned.
type Task struct {
	ID        int64
	OwnerID   int64
	Text      string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
