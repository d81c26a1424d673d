package models

import "time"

// CreatedAtLayout is the ISO-8601 layout used for Task.CreatedAt (UTC, millisecond precision)
const CreatedAtLayout = "2006-01-02T15:04:05.000Z"

// Task represents a single user-entered item
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"` // set once at creation, never mutated
}

// FormatCreatedAt renders t in the layout stored in Task.CreatedAt
func FormatCreatedAt(t time.Time) string {
	return t.UTC().Format(CreatedAtLayout)
}

// Stats holds aggregate counts over a task list
type Stats struct {
	Total     int
	Completed int
}

// Pending returns the number of tasks not yet completed
func (s Stats) Pending() int {
	return s.Total - s.Completed
}

// CountStats computes aggregate counts for a task list
func CountStats(tasks []Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	return s
}
