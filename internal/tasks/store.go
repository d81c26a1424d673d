// Package tasks holds the task list state: the command set, the pure
// transition function and the Store that owns the current list.
package tasks

import (
	"log/slog"
	"slices"
	"time"

	"github.com/tgienger/focus/internal/models"
)

// Listener is called with the new list after every recognized command
type Listener func(tasks []models.Task)

// Store owns the ordered task list. All changes go through Dispatch.
type Store struct {
	tasks     []models.Task
	now       func() time.Time
	ids       *IDSource
	listeners map[int]Listener
	order     []int
	nextSub   int
	logger    *slog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithClock sets the clock used for ids and creation timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger used to trace dispatched commands
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates an empty store
func NewStore(opts ...Option) *Store {
	s := &Store{
		tasks:     []models.Task{},
		now:       time.Now,
		listeners: make(map[int]Listener),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ids = NewIDSource(s.now)
	return s
}

// Dispatch applies cmd and notifies listeners when the command was recognized
func (s *Store) Dispatch(cmd Command) {
	if cmd == nil {
		return
	}

	switch c := cmd.(type) {
	case AddTask:
		if c.ID == 0 {
			c.ID = s.ids.Next()
		}
		if c.CreatedAt == "" {
			c.CreatedAt = models.FormatCreatedAt(s.now())
		}
		cmd = c
	case LoadTasks:
		s.ids.Observe(c.Tasks)
	}

	next, ok := apply(s.tasks, cmd)
	if !ok {
		s.logger.Debug("ignored unknown command", "type", cmd.Type())
		return
	}
	s.tasks = next
	s.logger.Debug("dispatched command", "type", cmd.Type(), "tasks", len(next))

	for _, id := range s.order {
		if fn, ok := s.listeners[id]; ok {
			fn(s.Tasks())
		}
	}
}

// Subscribe registers fn to run after every transition and returns a
// function that removes it again
func (s *Store) Subscribe(fn Listener) func() {
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.order = append(s.order, id)

	return func() {
		delete(s.listeners, id)
		s.order = slices.DeleteFunc(s.order, func(v int) bool { return v == id })
	}
}

// Tasks returns a copy of the current list
func (s *Store) Tasks() []models.Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks
func (s *Store) Len() int {
	return len(s.tasks)
}

// Stats returns total and completed counts
func (s *Store) Stats() models.Stats {
	return models.CountStats(s.tasks)
}
