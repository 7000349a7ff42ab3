package model

import "time"

// Status is a task workflow status. Values outside the allowed set
// coerce to StatusToDo during normalization.
type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In progress"
	StatusReview     Status = "Review"
	StatusDone       Status = "Done"
)

// AllowedStatuses lists every valid Status, in dropdown order.
var AllowedStatuses = []Status{StatusToDo, StatusInProgress, StatusReview, StatusDone}

// ValidStatus reports whether s is one of the allowed statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusReview, StatusDone:
		return true
	}
	return false
}

// DefaultCategory is used when the category cell is blank.
const DefaultCategory = "Uncategorized"

// Task is one row of the canonical task table.
//
// Start and End are nil when the source cell could not be parsed as a
// date; such rows stay editable in the table but are excluded from the
// chart scene. An End before Start is passed through, not rejected.
type Task struct {
	Name     string
	ID       string // trimmed; duplicates tolerated (resolver: last wins)
	Start    *time.Time
	End      *time.Time
	Progress float64 // always in [0,100]
	ParentID string  // "" means no parent
	Category string
	Status   Status
}

// Charted reports whether the task has both dates and can appear on the chart.
func (t Task) Charted() bool {
	return t.Start != nil && t.End != nil
}
