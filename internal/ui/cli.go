// Package ui implements the command line interface.
package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/JordanDim/planpal/internal/config"
	"github.com/JordanDim/planpal/internal/dateutil"
	"github.com/JordanDim/planpal/internal/db"
	"github.com/JordanDim/planpal/internal/event"
	"github.com/JordanDim/planpal/internal/recur"
	"github.com/JordanDim/planpal/internal/tui"
	"github.com/JordanDim/planpal/internal/view"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   event.Repository
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened lazily from the configured database path, so
// commands that never touch storage (version, config) work without one.
func NewApp(repo event.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "planpal",
		Short: "A calendar for planning events with friends",
		Long: `Planpal is a shared calendar in your terminal.

It keeps track of one-off and repeating events, shows them in day,
week, month and year views, and can export them as iCalendar files.

Run without arguments to open the interactive calendar.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return tui.Run(a.repo, a.config)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.cancelCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.dayCmd())
	a.root.AddCommand(a.weekCmd())
	a.root.AddCommand(a.monthCmd())
	a.root.AddCommand(a.yearCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("planpal %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the configured database on first use.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	dir := filepath.Dir(a.config.Storage.DBPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	return nil
}

// expandOptions maps the configured overflow policy onto expansion options.
func (a *App) expandOptions() recur.Options {
	opts := recur.Options{}
	if a.config.Calendar.MonthOverflow == "skip" {
		opts.Overflow = recur.OverflowSkip
	}
	return opts
}

// viewOptions returns the layout options derived from the config.
func (a *App) viewOptions() view.Options {
	return view.Options{
		UnitsPerHour: a.config.Calendar.UnitsPerHour,
		Expand:       a.expandOptions(),
	}
}

// anchorFromArgs parses an optional date argument, defaulting to today.
func anchorFromArgs(args []string) (time.Time, error) {
	if len(args) == 0 {
		return dateutil.TruncateToDay(time.Now()), nil
	}
	return dateutil.ParseDate(args[0])
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository if one was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
