package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/focus/internal/models"
	"github.com/tgienger/focus/internal/tasks"
	"github.com/tgienger/focus/internal/ui/keys"
	"github.com/tgienger/focus/internal/ui/styles"
)

// EmptyMessage is shown when there are no tasks
const EmptyMessage = "No tasks yet. Add one above to get started!"

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// FocusArea represents which part of the UI has focus
type FocusArea int

const (
	FocusInput FocusArea = iota
	FocusTaskList
)

// QuitRequested signals the app to tear down and exit
type QuitRequested struct{}

// TaskListView shows the add-task form and the task list
type TaskListView struct {
	store  *tasks.Store
	styles *styles.Styles
	keys   keys.KeyMap
	help   help.Model

	width  int
	height int

	// UI state
	focus    FocusArea
	cursor   int
	scrollY  int
	draft    textinput.Model
	showHelp bool
}

// NewTaskListView creates a new task list view with the draft input focused
func NewTaskListView(store *tasks.Store, s *styles.Styles) *TaskListView {
	draft := textinput.New()
	draft.Placeholder = "Add a new task..."
	draft.CharLimit = 200
	draft.Prompt = ""
	draft.Focus()

	v := &TaskListView{
		store: store,
		keys:  keys.DefaultKeyMap(),
		help:  help.New(),
		focus: FocusInput,
		draft: draft,
	}
	v.SetStyles(s)
	return v
}

// SetStyles switches the view to a new set of styles
func (v *TaskListView) SetStyles(s *styles.Styles) {
	v.styles = s

	v.draft.TextStyle = lipgloss.NewStyle().Foreground(s.Theme.Foreground)
	v.draft.PlaceholderStyle = lipgloss.NewStyle().Foreground(s.Theme.ForegroundDim)
	v.draft.Cursor.Style = lipgloss.NewStyle().Foreground(s.Theme.Primary)

	v.help.Styles.ShortKey = s.HelpKey
	v.help.Styles.ShortDesc = s.HelpDesc
	v.help.Styles.ShortSeparator = s.HelpDesc
	v.help.Styles.FullKey = s.HelpKey
	v.help.Styles.FullDesc = s.HelpDesc
	v.help.Styles.FullSeparator = s.HelpDesc
}

// Focus returns the focused area
func (v *TaskListView) Focus() FocusArea {
	return v.focus
}

// Draft returns the unsubmitted input text
func (v *TaskListView) Draft() string {
	return v.draft.Value()
}

// Cursor returns the selected task index
func (v *TaskListView) Cursor() int {
	return v.cursor
}

// CanSubmit reports whether the draft holds more than whitespace
func (v *TaskListView) CanSubmit() bool {
	return strings.TrimSpace(v.draft.Value()) != ""
}

// Init initializes the view
func (v *TaskListView) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (v *TaskListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(v.width)
		v.draft.Width = clamp(contentWidth-24, 10, 50)
		v.help.Width = contentWidth
		v.ensureVisible()
		return v, nil

	case tea.KeyMsg:
		if v.focus == FocusInput {
			return v.updateInput(msg)
		}
		return v.updateList(msg)
	}

	// Cursor blink and other textinput messages
	var cmd tea.Cmd
	v.draft, cmd = v.draft.Update(msg)
	return v, cmd
}

func (v *TaskListView) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Tab):
		v.focusList()
		return v, nil

	case key.Matches(msg, v.keys.Submit):
		v.submit()
		return v, nil
	}

	var cmd tea.Cmd
	v.draft, cmd = v.draft.Update(msg)
	return v, cmd
}

func (v *TaskListView) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := v.store.Tasks()

	switch {
	case key.Matches(msg, v.keys.Tab), key.Matches(msg, v.keys.FocusInput):
		return v, v.focusInput()

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(list)-1 {
			v.cursor++
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Toggle):
		if v.cursor < len(list) {
			v.store.Dispatch(tasks.ToggleTask{ID: list[v.cursor].ID})
		}
		return v, nil

	case key.Matches(msg, v.keys.Delete):
		if v.cursor < len(list) {
			v.store.Dispatch(tasks.DeleteTask{ID: list[v.cursor].ID})
			v.clampCursor()
		}
		return v, nil

	case key.Matches(msg, v.keys.ClearCompleted):
		// The control only exists while something is completed
		if v.store.Stats().Completed > 0 {
			v.store.Dispatch(tasks.ClearCompleted{})
			v.clampCursor()
		}
		return v, nil

	case key.Matches(msg, v.keys.Help):
		v.showHelp = !v.showHelp
		return v, nil

	case key.Matches(msg, v.keys.QuitList):
		return v, func() tea.Msg { return QuitRequested{} }
	}

	return v, nil
}

// submit adds the trimmed draft as a task and clears the input.
// An empty or whitespace-only draft is ignored.
func (v *TaskListView) submit() {
	text := strings.TrimSpace(v.draft.Value())
	if text == "" {
		return
	}
	v.store.Dispatch(tasks.AddTask{Text: text})
	v.draft.Reset()
}

func (v *TaskListView) focusList() {
	v.draft.Blur()
	v.focus = FocusTaskList
	v.clampCursor()
}

func (v *TaskListView) focusInput() tea.Cmd {
	v.focus = FocusInput
	v.showHelp = false
	return v.draft.Focus()
}

func (v *TaskListView) clampCursor() {
	v.cursor = clamp(v.cursor, 0, max(0, v.store.Len()-1))
	v.ensureVisible()
}

// visibleRows is the number of task lines that fit below the header panels
func (v *TaskListView) visibleRows() int {
	if v.height == 0 {
		return 10
	}
	return max(v.height-22, 3)
}

func (v *TaskListView) ensureVisible() {
	rows := v.visibleRows()
	if v.cursor < v.scrollY {
		v.scrollY = v.cursor
	}
	if v.cursor >= v.scrollY+rows {
		v.scrollY = v.cursor - rows + 1
	}
	v.scrollY = clamp(v.scrollY, 0, max(0, v.store.Len()-rows))
}

// View renders the form, the task list and the help line
func (v *TaskListView) View() string {
	var b strings.Builder

	b.WriteString(v.renderForm())
	b.WriteString("\n\n")
	b.WriteString(v.renderSectionHeader())
	b.WriteString("\n")
	b.WriteString(v.renderTaskList())
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

func (v *TaskListView) renderForm() string {
	s := v.styles

	inputStyle := s.Input
	if v.focus == FocusInput {
		inputStyle = s.InputFocused
	}
	input := inputStyle.Width(v.draft.Width + 2).Render(v.draft.View())

	btnStyle := s.ButtonDisabled
	if v.CanSubmit() {
		btnStyle = s.ButtonPrimary
	}
	btn := btnStyle.Render("Add Task")

	return lipgloss.JoinHorizontal(lipgloss.Center, input, "  ", btn)
}

func (v *TaskListView) renderSectionHeader() string {
	s := v.styles
	title := s.PanelTitle.Render("Your Tasks")

	completed := v.store.Stats().Completed
	if completed == 0 {
		return title
	}
	clearBtn := v.clearStyle().Render("Clear Completed")
	if v.focus == FocusTaskList {
		clearBtn += " " + s.HelpKey.Render("c")
	}

	contentWidth := styles.ContentWidth(v.width)
	gap := max(contentWidth-lipgloss.Width(title)-lipgloss.Width(clearBtn)-4, 2)
	return title + strings.Repeat(" ", gap) + clearBtn
}

// clearStyle highlights the clear control while the list, which owns its key, has focus
func (v *TaskListView) clearStyle() lipgloss.Style {
	if v.focus == FocusTaskList {
		return v.styles.ButtonFocused
	}
	return v.styles.ButtonDanger
}

func (v *TaskListView) renderTaskList() string {
	s := v.styles
	list := v.store.Tasks()

	if len(list) == 0 {
		return s.TitleMuted.Render(EmptyMessage)
	}

	rows := v.visibleRows()
	endIdx := min(v.scrollY+rows, len(list))

	var items []string
	for i := v.scrollY; i < endIdx; i++ {
		items = append(items, v.renderTaskItem(list[i], i == v.cursor && v.focus == FocusTaskList))
	}
	if len(list) > rows {
		items = append(items, s.TitleMuted.Render(fmt.Sprintf("  %d-%d of %d", v.scrollY+1, endIdx, len(list))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (v *TaskListView) renderTaskItem(task models.Task, selected bool) string {
	s := v.styles
	width := max(styles.ContentWidth(v.width)-4, 20)

	mark := "[ ]"
	text := task.Text
	if task.Completed {
		mark = "[" + s.Check.Render("✓") + "]"
		text = s.TaskDone.Render(text)
	}

	style := s.ListItem
	if selected {
		style = s.ListSelected
	}
	return style.Width(width).Render(mark + " " + text)
}

func (v *TaskListView) renderHelp() string {
	if v.focus == FocusInput {
		return v.styles.Help.Render(v.help.ShortHelpView(v.keys.InputHelp()))
	}
	v.help.ShowAll = v.showHelp
	return v.styles.Help.Render(v.help.View(v.keys))
}
