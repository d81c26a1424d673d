package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/tgienger/focus/internal/config"
	"github.com/tgienger/focus/internal/db"
	"github.com/tgienger/focus/internal/logging"
	"github.com/tgienger/focus/internal/persist"
	"github.com/tgienger/focus/internal/ui"
)

// BuildInfo is version information set via ldflags
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("focus %s (commit: %s, built: %s)", b.Version, b.Commit, b.Date)
}

// Runner starts the UI for an App. Tests replace it to avoid a terminal.
type Runner func(app *ui.App) error

// RunProgram runs app as a full screen bubbletea program
func RunProgram(app *ui.App) error {
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// NewRootCommand creates the root command. Flags override environment
// variables, which override defaults.
func NewRootCommand(build BuildInfo, run Runner) *cobra.Command {
	var cfg *config.Config

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "A terminal focus tracker: tasks, a session timer and a light/dark theme",
		Long: `Focus is a small terminal task tracker.

Add short tasks, tick them off, clear what is done and keep an eye on how
long the session has been running. Tasks are kept between runs.

CONFIGURATION:
  FOCUS_BACKEND          Key-value backend: sqlite or redis (default: sqlite)
  FOCUS_DB_PATH          sqlite database file (default: $XDG_DATA_HOME/focus/focus.db)
  FOCUS_REDIS_ADDR       Redis address (default: localhost:6379)
  FOCUS_REDIS_PREFIX     Prefix for Redis keys (default: focus:)
  FOCUS_LOG_FILE         Log file (default: no logging)
  FOCUS_DEBUG            Log at debug level
  FOCUS_DARK             Start in dark mode`,
		Version:       build.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cfg, run)
		},
	}
	cmd.SetVersionTemplate(build.String() + "\n")

	loaded, err := config.Load()
	if err != nil {
		// Surface the env error when the command runs
		cmd.PersistentPreRunE = func(*cobra.Command, []string) error { return err }
		loaded = config.Default()
	}
	cfg = loaded

	flags := cmd.Flags()
	flags.StringVar(&cfg.Backend, "backend", cfg.Backend, "key-value backend: sqlite or redis")
	flags.StringVar(&cfg.DBPath, "db", cfg.DBPath, "sqlite database path")
	flags.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "redis server address")
	flags.StringVar(&cfg.RedisPrefix, "redis-prefix", cfg.RedisPrefix, "prefix for redis keys")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log at debug level")
	flags.BoolVar(&cfg.Dark, "dark", cfg.Dark, "start in dark mode")

	return cmd
}

func runApp(cfg *config.Config, run Runner) error {
	logger, closeLog, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	kv, closer, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Info("store opened", "backend", cfg.Backend)

	app := ui.NewApp(kv, ui.Options{Dark: cfg.Dark, Logger: logger})
	defer app.Close()

	if err := run(app); err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	return nil
}

func openStore(cfg *config.Config) (persist.KV, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		r, err := db.NewRedis(cfg.RedisAddr, cfg.RedisPrefix)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing redis: %w", err)
		}
		return r, r, nil
	default:
		database, err := db.New(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing database: %w", err)
		}
		return database, database, nil
	}
}
