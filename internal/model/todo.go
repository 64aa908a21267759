// Package model defines domain entities for the application.
package model

import "time"

// Todo represents a single todo item.
// IDs are assigned by the store, monotonically increasing, and never
// reused within the lifetime of a process.
type Todo struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	DueDate    time.Time `json:"dueDate"`
	IsComplete bool      `json:"isComplete"`
	CreatedAt  time.Time `json:"createdAt"`
}

// IsOverdue returns true if the todo's due date has passed and it is
// still incomplete.
func (t *Todo) IsOverdue(now time.Time) bool {
	return !t.IsComplete && t.DueDate.Before(now)
}
