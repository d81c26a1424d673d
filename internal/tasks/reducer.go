package tasks

import (
	"slices"

	"github.com/tgienger/focus/internal/models"
)

// Reduce applies cmd to state and returns the resulting list.
// The input slice is never modified. Unknown commands return state unchanged.
// Reduce is pure: AddTask must arrive with its ID and CreatedAt already set.
func Reduce(state []models.Task, cmd Command) []models.Task {
	next, _ := apply(state, cmd)
	return next
}

// apply reports whether cmd was recognized alongside the new list
func apply(state []models.Task, cmd Command) ([]models.Task, bool) {
	switch c := cmd.(type) {
	case AddTask:
		next := make([]models.Task, len(state), len(state)+1)
		copy(next, state)
		return append(next, models.Task{
			ID:        c.ID,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		}), true

	case ToggleTask:
		next := make([]models.Task, len(state))
		for i, t := range state {
			if t.ID == c.ID {
				t.Completed = !t.Completed
			}
			next[i] = t
		}
		return next, true

	case DeleteTask:
		return filter(state, func(t models.Task) bool { return t.ID != c.ID }), true

	case ClearCompleted:
		return filter(state, func(t models.Task) bool { return !t.Completed }), true

	case LoadTasks:
		next := slices.Clone(c.Tasks)
		if next == nil {
			next = []models.Task{}
		}
		return next, true
	}

	return state, false
}

// filter returns a new list holding the tasks for which keep is true, in order
func filter(state []models.Task, keep func(models.Task) bool) []models.Task {
	next := make([]models.Task, 0, len(state))
	for _, t := range state {
		if keep(t) {
			next = append(next, t)
		}
	}
	return next
}
