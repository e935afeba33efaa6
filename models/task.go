package models

import (
	"time"

	"github.com/google/uuid"
)

// Priority is the urgency level of a task.
type Priority string

// Task priority levels. PriorityLow is the default for newly created tasks.
const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a single to-do item owned by exactly one user.
//
// A task is only ever visible, mutable, or deletable by its owner; the
// OwnerID is set from the authenticated caller at creation time and never
// changes afterwards.
type Task struct {
	// TaskID is the unique identifier of the task, assigned at creation.
	TaskID uuid.UUID `json:"id"`

	// Title is the non-empty task description.
	Title string `json:"title"`

	// Priority is the urgency level, one of LOW, MEDIUM or HIGH.
	Priority Priority `json:"priority"`

	// DueDate is the optional calendar-date deadline.
	// A nil value means "no deadline" and is serialised as JSON null.
	DueDate *Date `json:"dueDate"`

	// IsDone reports whether the task has been completed.
	IsDone bool `json:"isDone"`

	// CreatedAt is the immutable creation timestamp. Task lists are
	// ordered by it, newest first.
	CreatedAt time.Time `json:"createdAt"`

	// OwnerID references the owning user.
	OwnerID uuid.UUID `json:"userId"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}
