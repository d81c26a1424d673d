package ui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/focus/internal/persist"
	"github.com/tgienger/focus/internal/tasks"
	"github.com/tgienger/focus/internal/theme"
	"github.com/tgienger/focus/internal/timer"
	"github.com/tgienger/focus/internal/ui/keys"
	"github.com/tgienger/focus/internal/ui/styles"
	"github.com/tgienger/focus/internal/ui/views"
)

// Options configures a new App
type Options struct {
	Dark         bool
	Logger       *slog.Logger
	Clock        func() time.Time
	TickInterval time.Duration // defaults to one second
}

// App is the root model. It owns the task store, the persistence syncer,
// the timer and the theme for one run of the widget.
type App struct {
	store    *tasks.Store
	syncer   *persist.Syncer
	theme    *theme.State
	timer    timer.Model
	styles   *styles.Styles
	keys     keys.KeyMap
	taskList *views.TaskListView
	logger   *slog.Logger
	width    int
	height   int
	closed   bool
}

// Creates a new application backed by kv. Saved tasks are loaded before
// the first render and every later change is written back to kv.
func NewApp(kv persist.KV, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	interval := opts.TickInterval
	if interval <= 0 {
		interval = time.Second
	}

	store := tasks.NewStore(tasks.WithClock(clock), tasks.WithLogger(logger))
	syncer := persist.NewSyncer(kv)
	syncer.SetLogger(logger)
	syncer.Attach(store)
	syncer.Hydrate(store)

	a := &App{
		store:  store,
		syncer: syncer,
		theme:  theme.New(opts.Dark),
		timer:  timer.NewWithInterval(interval),
		keys:   keys.DefaultKeyMap(),
		logger: logger,
	}
	a.styles = styles.NewStyles(styles.ForMode(a.theme.IsDark()))
	a.taskList = views.NewTaskListView(store, a.styles)

	a.theme.Subscribe(func(isDark bool) {
		a.styles = styles.NewStyles(styles.ForMode(isDark))
		a.taskList.SetStyles(a.styles)
		a.logger.Debug("theme changed", "dark", isDark, "theme", a.styles.Theme.Name)
	})

	return a
}

// Store returns the task store
func (a *App) Store() *tasks.Store {
	return a.store
}

// Theme returns the theme state
func (a *App) Theme() *theme.State {
	return a.theme
}

// Timer returns the elapsed-time counter
func (a *App) Timer() timer.Model {
	return a.timer
}

func (a *App) Init() tea.Cmd {
	a.logger.Debug("timer started", "interval", a.timer.Interval())
	return tea.Batch(a.taskList.Init(), a.timer.Start())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case timer.TickMsg, timer.StartStopMsg:
		var cmd tea.Cmd
		a.timer, cmd = a.timer.Update(msg)
		return a, cmd

	case views.QuitRequested:
		return a, a.quit()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, a.quit()
		case key.Matches(msg, a.keys.ToggleTheme):
			a.theme.Toggle()
			return a, nil
		}
	}

	_, cmd := a.taskList.Update(msg)
	return a, cmd
}

func (a *App) quit() tea.Cmd {
	a.Close()
	return tea.Quit
}

// Close tears the run down: the timer stops ticking and the store is
// detached from persistence. Safe to call more than once.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.timer.Stop()
	a.syncer.Detach()
	a.logger.Debug("timer stopped", "seconds", a.timer.Seconds())
}

func (a *App) View() string {
	s := a.styles
	width := styles.ContentWidth(a.width)

	var b strings.Builder
	b.WriteString(views.RenderHeader(s, a.theme.IsDark(), width))
	b.WriteString("\n\n")
	b.WriteString(views.RenderSession(s, a.timer.FormattedTime(), a.timer.Seconds(), width))
	b.WriteString("\n")
	b.WriteString(views.RenderStats(s, a.store.Stats(), width))
	b.WriteString("\n\n")
	b.WriteString(a.taskList.View())

	return styles.CenterView(b.String(), a.width, a.height)
}
