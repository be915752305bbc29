// Package cli provides the command-line interface for notekeeper.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/notekeeper/internal/core/ports/driven"
	"github.com/custodia-labs/notekeeper/internal/core/ports/driving"
	"github.com/custodia-labs/notekeeper/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// verbose enables debug logging to stderr.
var verbose bool

// configDir overrides the settings directory (default ~/.notekeeper).
var configDir string

// Initializer builds the services from the settings in configDir and
// returns a cleanup function. It runs once, after flags are parsed.
type Initializer func(configDir string) (cleanup func(), err error)

// skipInitAnnotation marks commands that run without services.
const skipInitAnnotation = "notekeeper/skip-init"

var (
	initializer Initializer
	cleanup     func()
)

// Services injected by main. Commands check for nil and report the
// missing service instead of panicking.
var (
	notebookService driving.NotebookService
	settingsService driving.SettingsService
	documentWatcher driven.Watcher
)

var rootCmd = &cobra.Command{
	Use:   "notekeeper",
	Short: "Keep notes in notebooks",
	Long: `notekeeper keeps short notes grouped into named notebooks.

All notebooks and notes live in a single document that is read in full,
changed and written back on every operation. Use the subcommands to manage
notebooks and notes from scripts, 'notekeeper tui' for the interactive
interface, or 'notekeeper mcp serve' to expose them to AI assistants.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if verbose {
			logger.SetVerbose(true)
		}
		if cmd.Annotations[skipInitAnnotation] != "" {
			return nil
		}
		if initializer == nil || cleanup != nil {
			return nil
		}
		done, err := initializer(configDir)
		if err != nil {
			return err
		}
		cleanup = done
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "Settings directory (default ~/.notekeeper)")
}

// SetServices injects the core services used by all commands.
func SetServices(notebooks driving.NotebookService, settings driving.SettingsService) {
	notebookService = notebooks
	settingsService = settings
}

// SetWatcher injects the watcher the TUI uses to pick up external writes.
// A nil watcher disables live reload.
func SetWatcher(w driven.Watcher) {
	documentWatcher = w
}

// SetInitializer registers the function that wires services before any
// command runs.
func SetInitializer(fn Initializer) {
	initializer = fn
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command and releases whatever the initializer
// opened.
func Execute(ctx context.Context) error {
	defer func() {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}
