package tasks

import "github.com/tgienger/focus/internal/models"

// Command types understood by Reduce
const (
	TypeAddTask        = "ADD_TASK"
	TypeToggleTask     = "TOGGLE_TASK"
	TypeDeleteTask     = "DELETE_TASK"
	TypeClearCompleted = "CLEAR_COMPLETED"
	TypeLoadTasks      = "LOAD_TASKS"
)

// Command is a named instruction that triggers a task list transition.
// Commands with a type Reduce does not know are ignored.
type Command interface {
	Type() string
}

// AddTask appends a new task. Text must already be trimmed and non-empty.
//
// Reduce copies ID and CreatedAt as given and never assigns them, so callers
// of Reduce must fill both in. Store.Dispatch stamps them when left zero.
type AddTask struct {
	Text      string
	ID        int64
	CreatedAt string
}

// ToggleTask flips the completed flag of the task with the given ID
type ToggleTask struct {
	ID int64
}

// DeleteTask removes the task with the given ID
type DeleteTask struct {
	ID int64
}

// ClearCompleted removes every completed task
type ClearCompleted struct{}

// LoadTasks replaces the whole list, used once at startup
type LoadTasks struct {
	Tasks []models.Task
}

func (AddTask) Type() string        { return TypeAddTask }
func (ToggleTask) Type() string     { return TypeToggleTask }
func (DeleteTask) Type() string     { return TypeDeleteTask }
func (ClearCompleted) Type() string { return TypeClearCompleted }
func (LoadTasks) Type() string      { return TypeLoadTasks }
