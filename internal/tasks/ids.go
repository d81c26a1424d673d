package tasks

import (
	"time"

	"github.com/tgienger/focus/internal/models"
)

// IDSource hands out task ids based on the millisecond wall clock.
// Ids are strictly increasing: two tasks created within the same
// millisecond get consecutive values instead of colliding.
type IDSource struct {
	now  func() time.Time
	last int64
}

// NewIDSource creates an id source reading time from now
func NewIDSource(now func() time.Time) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now}
}

// Next returns a fresh id greater than every id returned or observed so far
func (s *IDSource) Next() int64 {
	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// Observe moves the source past every id in tasks
func (s *IDSource) Observe(tasks []models.Task) {
	for _, t := range tasks {
		if t.ID > s.last {
			s.last = t.ID
		}
	}
}
