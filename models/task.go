package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used for due dates everywhere:
// JSON bodies, bson documents, and query params. Lexicographic order on
// this layout matches chronological order.
const DateLayout = "2006-01-02"

// Task is the single domain record: a household bill or chore with a due
// date, payment status, and amount. The recurring flag is stored and
// returned but never interpreted.
type Task struct {
	ID          int64   `json:"id,omitempty" bson:"_id"`
	Title       string  `json:"title" bson:"title"`
	Description string  `json:"description" bson:"description"`
	DueDate     string  `json:"dueDate" bson:"due_date"`
	Paid        bool    `json:"paid" bson:"paid"`
	Recurring   bool    `json:"recurring" bson:"recurring"`
	Category    string  `json:"category" bson:"category"`
	Amount      float64 `json:"amount" bson:"amount"`
}

// ValidationError reports a rejected field at the API boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks boundary rules before a task reaches the service layer.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if t.DueDate == "" {
		return &ValidationError{Field: "dueDate", Reason: "must not be empty"}
	}
	if _, err := time.Parse(DateLayout, t.DueDate); err != nil {
		return &ValidationError{Field: "dueDate", Reason: "must be a yyyy-mm-dd date"}
	}
	if t.Amount < 0 {
		return &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	return nil
}
