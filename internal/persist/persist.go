// Package persist mirrors the task list into a key-value store: it hydrates
// the Store once at startup and writes the full list after every transition.
package persist

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tgienger/focus/internal/models"
	"github.com/tgienger/focus/internal/tasks"
)

// TasksKey is the key holding the serialized task list
const TasksKey = "focus-tracker-tasks"

// KV is a synchronous string key-value store. A missing key reads as "".
type KV interface {
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
}

// Dispatcher is the part of the task store the Syncer needs
type Dispatcher interface {
	Dispatch(cmd tasks.Command)
	Subscribe(fn tasks.Listener) func()
}

// Syncer keeps TasksKey in step with a task store
type Syncer struct {
	kv          KV
	logger      *slog.Logger
	unsubscribe func()
}

// NewSyncer creates a Syncer writing to kv
func NewSyncer(kv KV) *Syncer {
	return &Syncer{
		kv:     kv,
		logger: slog.Default(),
	}
}

// SetLogger sets the logger used for read and write failures
func (s *Syncer) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Hydrate loads the saved list into store. Missing or unreadable data
// leaves the store untouched. It reports whether tasks were loaded.
func (s *Syncer) Hydrate(store Dispatcher) bool {
	raw, err := s.kv.GetSetting(TasksKey)
	if err != nil {
		s.logger.Warn("read saved tasks", "key", TasksKey, "error", err)
		return false
	}
	if strings.TrimSpace(raw) == "" {
		s.logger.Debug("no saved tasks", "key", TasksKey)
		return false
	}

	list, err := Decode(raw)
	if err != nil {
		s.logger.Warn("discarding unreadable saved tasks", "key", TasksKey, "error", err)
		return false
	}

	store.Dispatch(tasks.LoadTasks{Tasks: list})
	s.logger.Info("loaded saved tasks", "count", len(list))
	return true
}

// Attach subscribes to store so every transition is written back
func (s *Syncer) Attach(store Dispatcher) {
	s.Detach()
	s.unsubscribe = store.Subscribe(func(list []models.Task) {
		if err := s.Save(list); err != nil {
			s.logger.Error("save tasks", "key", TasksKey, "error", err)
		}
	})
}

// Detach stops writing transitions
func (s *Syncer) Detach() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Save serializes list and writes it under TasksKey
func (s *Syncer) Save(list []models.Task) error {
	raw, err := Encode(list)
	if err != nil {
		return err
	}
	return s.kv.SetSetting(TasksKey, raw)
}

// Encode serializes a task list as a JSON array. A nil list encodes as [].
func Encode(list []models.Task) (string, error) {
	if list == nil {
		list = []models.Task{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("encode tasks: %w", err)
	}
	return string(data), nil
}

// Decode parses a JSON array of tasks. JSON null decodes as an empty list.
func Decode(raw string) ([]models.Task, error) {
	var list []models.Task
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	if list == nil {
		list = []models.Task{}
	}
	return list, nil
}
