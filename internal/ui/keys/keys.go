package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the app
type KeyMap struct {
	// Global
	Quit        key.Binding
	ToggleTheme key.Binding
	Tab         key.Binding

	// Draft input
	Submit key.Binding

	// Task list
	Up             key.Binding
	Down           key.Binding
	Toggle         key.Binding
	Delete         key.Binding
	ClearCompleted key.Binding
	FocusInput     key.Binding
	Help           key.Binding
	QuitList       key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "add task"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " ", "x"),
			key.WithHelp("↵/x", "toggle"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		ClearCompleted: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear completed"),
		),
		FocusInput: key.NewBinding(
			key.WithKeys("i", "a", "esc"),
			key.WithHelp("i", "new task"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		QuitList: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// InputHelp is the help shown while typing a draft
func (k KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Tab, k.ToggleTheme, k.Quit}
}

// ShortHelp is the help shown while the task list has focus
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Delete, k.ClearCompleted, k.FocusInput, k.Help, k.QuitList}
}

// FullHelp is the expanded help for the task list
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Delete},
		{k.ClearCompleted, k.FocusInput, k.Tab},
		{k.ToggleTheme, k.Help, k.QuitList, k.Quit},
	}
}
