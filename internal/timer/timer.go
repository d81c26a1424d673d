// Package timer counts whole seconds since the widget started running.
//
// The count is kept by a bubbles stopwatch. Stop is final for a run: any tick
// already in flight is ignored and no further tick is scheduled.
package timer

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the timer that scheduled it
type TickMsg = stopwatch.TickMsg

// StartStopMsg switches the underlying stopwatch on or off
type StartStopMsg = stopwatch.StartStopMsg

// Model is the elapsed-seconds counter
type Model struct {
	sw      stopwatch.Model
	started bool
	stopped bool
}

// New creates an idle timer ticking once per second
func New() Model {
	return NewWithInterval(time.Second)
}

// NewWithInterval creates an idle timer ticking every interval
func NewWithInterval(interval time.Duration) Model {
	return Model{sw: stopwatch.NewWithInterval(interval)}
}

// ID identifies this timer's messages
func (m Model) ID() int {
	return m.sw.ID()
}

// Interval is the time between ticks
func (m Model) Interval() time.Duration {
	return m.sw.Interval
}

// Elapsed returns the counted time
func (m Model) Elapsed() time.Duration {
	return m.sw.Elapsed()
}

// Seconds returns the elapsed whole seconds
func (m Model) Seconds() int {
	return int(m.sw.Elapsed() / time.Second)
}

// Running reports whether the timer is counting
func (m Model) Running() bool {
	return !m.stopped && m.sw.Running()
}

// FormattedTime returns the elapsed time as MM:SS
func (m Model) FormattedTime() string {
	return Format(m.Seconds())
}

// Format renders seconds as zero-padded minutes and seconds. Minutes are
// not wrapped into hours, so 3600 seconds renders as "60:00".
func Format(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Start begins counting from zero. A timer starts once per run: later calls
// return nil.
func (m *Model) Start() tea.Cmd {
	if m.started || m.stopped {
		return nil
	}
	m.started = true
	return m.sw.Start()
}

// Stop halts the stopwatch immediately and drops every later message
func (m *Model) Stop() {
	if m.stopped {
		return
	}
	m.stopped = true
	m.sw, _ = m.sw.Update(m.sw.Stop()())
}

// Update handles stopwatch messages addressed to this timer
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.stopped {
		return m, nil
	}
	var cmd tea.Cmd
	m.sw, cmd = m.sw.Update(msg)
	return m, cmd
}
