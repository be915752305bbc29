package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for notekeeper.

Notebooks are listed on the left and the active notebook's notes on the
right, newest first.

Controls:
  ↑/k, ↓/j - Select notebook / note
  tab      - Switch pane
  n        - New notebook
  r        - Rename notebook
  D        - Delete notebook
  a        - Add note
  e, enter - Edit note
  x        - Delete note
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

var tuiNoWatch bool

func init() {
	tuiCmd.Flags().BoolVar(&tuiNoWatch, "no-watch", false, "Do not reload when another process changes the document")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = errors.New("tui crashed")
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(notebookService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app.WithContext(ctx)
	if documentWatcher != nil && !tuiNoWatch {
		app.WithWatcher(documentWatcher)
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
