package timer

import (
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startMsg runs cmd, which must be the start sequence from Start, and returns
// its first message without waiting on the tick that follows it
func startMsg(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	seq := reflect.ValueOf(cmd())
	require.Equal(t, reflect.Slice, seq.Kind())
	first, ok := seq.Index(0).Interface().(tea.Cmd)
	require.True(t, ok)
	msg := first()
	require.IsType(t, StartStopMsg{}, msg)
	return msg
}

func started(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = m.Update(startMsg(t, m.Start()))
	require.True(t, m.Running())
	return m
}

// advance delivers n ticks in sequence, as the runtime would
func advance(t *testing.T, m Model, n int) Model {
	t.Helper()
	for range n {
		var cmd tea.Cmd
		m, cmd = m.Update(TickMsg{ID: m.ID()})
		require.NotNil(t, cmd)
	}
	return m
}

func TestFormat(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		5:    "00:05",
		59:   "00:59",
		60:   "01:00",
		65:   "01:05",
		125:  "02:05",
		3600: "60:00",
	}
	for seconds, want := range cases {
		assert.Equal(t, want, Format(seconds), "seconds=%d", seconds)
	}
}

func TestCountsWholeSeconds(t *testing.T) {
	m := New()
	assert.Equal(t, time.Second, m.Interval())
	assert.Equal(t, 0, m.Seconds())
	assert.Equal(t, "00:00", m.FormattedTime())
	assert.False(t, m.Running())

	m = started(t, m)
	m = advance(t, m, 125)
	assert.Equal(t, 125, m.Seconds())
	assert.Equal(t, "02:05", m.FormattedTime())
}

func TestIgnoresForeignTicks(t *testing.T) {
	m := started(t, New())
	other := New()

	m, cmd := m.Update(TickMsg{ID: other.ID()})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Seconds())
}

func TestIgnoresTicksBeforeStart(t *testing.T) {
	m := New()
	m, cmd := m.Update(TickMsg{ID: m.ID()})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Seconds())
}

func TestDropsRepeatedTick(t *testing.T) {
	m := started(t, NewWithInterval(time.Millisecond))

	m, next := m.Update(TickMsg{ID: m.ID()})
	require.NotNil(t, next)
	scheduled := next()

	m, _ = m.Update(scheduled)
	m, cmd := m.Update(scheduled)
	assert.Nil(t, cmd)
	assert.Equal(t, 2*time.Millisecond, m.Elapsed())
}

func TestStopCancelsTicks(t *testing.T) {
	m := started(t, New())
	m = advance(t, m, 3)

	m.Stop()
	assert.False(t, m.Running())

	m, cmd := m.Update(TickMsg{ID: m.ID()})
	assert.Nil(t, cmd)
	assert.Equal(t, 3, m.Seconds())
}

func TestStopBeforeStartMessageArrives(t *testing.T) {
	m := New()
	msg := startMsg(t, m.Start())
	m.Stop()

	m, _ = m.Update(msg)
	assert.False(t, m.Running())

	m, cmd := m.Update(TickMsg{ID: m.ID()})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Seconds())
}

func TestStartOncePerRun(t *testing.T) {
	m := New()
	require.NotNil(t, m.Start())
	assert.Nil(t, m.Start())

	m.Stop()
	assert.Nil(t, m.Start())
	assert.False(t, m.Running())
}
