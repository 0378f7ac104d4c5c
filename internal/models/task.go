package models

import "time"

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists every priority level, lowest first.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}

type Subtask struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Task is an assignment tied to a subject, optionally with a due date and
// an ordered list of subtasks.
type Task struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SubjectID string    `json:"subject_id"`
	DueDate   string    `json:"due_date,omitempty"` // YYYY-MM-DD format
	Priority  Priority  `json:"priority"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	Subtasks  []Subtask `json:"subtasks"`
}
