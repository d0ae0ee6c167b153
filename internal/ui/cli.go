package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timesynx/internal/board"
	"github.com/javiermolinar/timesynx/internal/config"
	"github.com/javiermolinar/timesynx/internal/db"
	"github.com/javiermolinar/timesynx/internal/overlap"
	"github.com/javiermolinar/timesynx/internal/summary"
	"github.com/javiermolinar/timesynx/internal/tui"
	"github.com/javiermolinar/timesynx/internal/weather"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo    board.Repository
	ownRepo bool // opened lazily by the App and closed by Close
	config  *config.Config
	root    *cobra.Command
	debug   bool // Enable debug logging
	use24h  bool
	noColor bool
	state   stateFlags
	now     func() time.Time
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened from the configured path on first use.
func NewApp(repo board.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg, now: time.Now}

	a.root = &cobra.Command{
		Use:   "timesynx",
		Short: "Compare timezones and find meeting times",
		Long: `Timesynx compares the time across a set of cities and finds the hours
when most of them are inside business hours.

Run without a subcommand to open the interactive board.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
			if !cmd.Flags().Changed("24h") {
				a.use24h = a.config.Display.Use24h
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			sv, err := a.resolveState(cmd.Context())
			if err != nil {
				return err
			}
			if _, err := a.repository(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: boards unavailable: %v\n", err)
			}
			return tui.RunWithDebug(a.repo, a.config, a.debug, tui.WithState(sv.State), tui.WithBoard(sv.Board))
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")
	a.root.PersistentFlags().BoolVar(&a.use24h, "24h", false, "Use 24-hour clocks")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable color output")
	a.state.register(a.root)

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.nowCmd())
	a.root.AddCommand(a.meetCmd())
	a.root.AddCommand(a.timelineCmd())
	a.root.AddCommand(a.shareCmd())
	a.root.AddCommand(a.openCmd())
	a.root.AddCommand(a.zonesCmd())
	a.root.AddCommand(a.weatherCmd())
	a.root.AddCommand(a.inviteCmd())
	a.root.AddCommand(a.watchCmd())
	a.root.AddCommand(a.boardCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "timesynx %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository if the App opened it.
func (a *App) Close() error {
	if a.ownRepo && a.repo != nil {
		return a.repo.Close()
	}
	return nil
}

// repository returns the board store, opening it on first use.
func (a *App) repository() (board.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}
	path := a.config.Storage.DBPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(path)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	a.repo = repo
	a.ownRepo = true
	return repo, nil
}

// summarize builds the comparison for a resolved state.
func (a *App) summarize(sv stateView) *summary.Summary {
	return a.summarizeWith(sv, a.config.Finder())
}

func (a *App) summarizeWith(sv stateView, f overlap.Finder) *summary.Summary {
	return summary.Build(sv.State, summary.Options{
		Finder:  f,
		Use24h:  a.use24h,
		Weather: weather.Mock{},
		Now:     a.now(),
	})
}
