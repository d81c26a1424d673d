package ui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgienger/focus/internal/persist"
	"github.com/tgienger/focus/internal/timer"
	"github.com/tgienger/focus/internal/ui/views"
)

type memKV map[string]string

func (m memKV) GetSetting(key string) (string, error) { return m[key], nil }

func (m memKV) SetSetting(key, value string) error {
	m[key] = value
	return nil
}

func newTestApp(t *testing.T, kv memKV) *App {
	t.Helper()
	a := NewApp(kv, Options{})
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return a
}

func typeText(a *App, text string) {
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(a *App, k tea.KeyType) tea.Cmd {
	_, cmd := a.Update(tea.KeyMsg{Type: k})
	return cmd
}

func pressRune(a *App, r rune) tea.Cmd {
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return cmd
}

// startTimer runs the Init batch and applies the timer's start message.
// The tick that follows it in the start sequence is not waited on.
func startTimer(t *testing.T, a *App) {
	t.Helper()
	batch, ok := a.Init()().(tea.BatchMsg)
	require.True(t, ok)

	for _, cmd := range batch {
		if cmd == nil {
			continue
		}
		seq := reflect.ValueOf(cmd())
		if seq.Kind() != reflect.Slice || seq.Len() == 0 {
			continue
		}
		first, ok := seq.Index(0).Interface().(tea.Cmd)
		require.True(t, ok)
		msg := first()
		require.IsType(t, timer.StartStopMsg{}, msg)
		a.Update(msg)
		require.True(t, a.Timer().Running())
		return
	}
	t.Fatalf("no timer start scheduled by Init")
}

func TestStartsEmpty(t *testing.T) {
	a := newTestApp(t, memKV{})

	assert.Equal(t, 0, a.Store().Stats().Total)
	assert.Equal(t, 0, a.Store().Stats().Completed)
	assert.False(t, a.Theme().IsDark())

	view := a.View()
	assert.Contains(t, view, views.EmptyMessage)
	assert.Contains(t, view, "00:00")
	assert.NotContains(t, view, "Clear Completed")
}

func TestAddTaskFromDraft(t *testing.T) {
	kv := memKV{}
	a := newTestApp(t, kv)

	typeText(a, "  Write report  ")
	press(a, tea.KeyEnter)

	list := a.Store().Tasks()
	require.Len(t, list, 1)
	assert.Equal(t, "Write report", list[0].Text)
	assert.False(t, list[0].Completed)
	assert.Empty(t, a.taskList.Draft())

	saved, err := persist.Decode(kv[persist.TasksKey])
	require.NoError(t, err)
	assert.Equal(t, list, saved)
}

func TestWhitespaceDraftIsIgnored(t *testing.T) {
	kv := memKV{}
	a := newTestApp(t, kv)

	typeText(a, "   ")
	assert.False(t, a.taskList.CanSubmit())
	press(a, tea.KeyEnter)

	assert.Equal(t, 0, a.Store().Len())
	assert.NotContains(t, kv, persist.TasksKey)
}

func TestListScenario(t *testing.T) {
	a := newTestApp(t, memKV{})

	typeText(a, "Write report")
	press(a, tea.KeyEnter)
	press(a, tea.KeyTab)
	require.Equal(t, views.FocusTaskList, a.taskList.Focus())

	pressRune(a, 'x')
	assert.True(t, a.Store().Tasks()[0].Completed)
	assert.Contains(t, a.View(), "Clear Completed")

	pressRune(a, 'i')
	require.Equal(t, views.FocusInput, a.taskList.Focus())
	typeText(a, "Review")
	press(a, tea.KeyEnter)
	require.Len(t, a.Store().Tasks(), 2)
	assert.False(t, a.Store().Tasks()[1].Completed)

	press(a, tea.KeyTab)
	pressRune(a, 'c')
	list := a.Store().Tasks()
	require.Len(t, list, 1)
	assert.Equal(t, "Review", list[0].Text)
	assert.NotContains(t, a.View(), "Clear Completed")

	pressRune(a, 'd')
	assert.Equal(t, 0, a.Store().Len())
	assert.Contains(t, a.View(), views.EmptyMessage)
}

func TestClearCompletedWithNothingCompleted(t *testing.T) {
	kv := memKV{}
	a := newTestApp(t, kv)
	typeText(a, "one")
	press(a, tea.KeyEnter)
	saved := kv[persist.TasksKey]

	press(a, tea.KeyTab)
	pressRune(a, 'c')
	assert.Equal(t, 1, a.Store().Len())
	assert.Equal(t, saved, kv[persist.TasksKey])
}

func TestLoadsSavedTasks(t *testing.T) {
	kv := memKV{persist.TasksKey: `[{"id":1,"text":"from last run","completed":true,"createdAt":"2024-05-01T10:00:00.000Z"}]`}
	a := newTestApp(t, kv)

	list := a.Store().Tasks()
	require.Len(t, list, 1)
	assert.Equal(t, "from last run", list[0].Text)
	assert.Contains(t, a.View(), "from last run")
}

func TestMalformedSaveStartsEmpty(t *testing.T) {
	a := newTestApp(t, memKV{persist.TasksKey: "not json"})
	assert.Equal(t, 0, a.Store().Len())
}

func TestToggleTheme(t *testing.T) {
	a := newTestApp(t, memKV{})
	typeText(a, "draft")

	press(a, tea.KeyCtrlT)
	assert.True(t, a.Theme().IsDark())
	assert.Equal(t, "draft", a.taskList.Draft())

	press(a, tea.KeyCtrlT)
	assert.False(t, a.Theme().IsDark())
}

func TestTimerTicksAndStopsOnQuit(t *testing.T) {
	a := newTestApp(t, memKV{})
	startTimer(t, a)

	_, next := a.Update(timer.TickMsg{ID: a.Timer().ID()})
	require.NotNil(t, next)
	assert.Equal(t, 1, a.Timer().Seconds())
	assert.Contains(t, a.View(), views.FocusSentence(1))

	cmd := press(a, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, a.Timer().Running())

	_, after := a.Update(timer.TickMsg{ID: a.Timer().ID()})
	assert.Nil(t, after)
	assert.Equal(t, 1, a.Timer().Seconds())
}

func TestQuitFromList(t *testing.T) {
	a := newTestApp(t, memKV{})
	press(a, tea.KeyTab)

	cmd := pressRune(a, 'q')
	require.NotNil(t, cmd)
	_, quit := a.Update(cmd())
	require.NotNil(t, quit)
	assert.IsType(t, tea.QuitMsg{}, quit())
}
