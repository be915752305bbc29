package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty document if none exists",
	Long: `Make sure the notebook document exists in the configured storage.
An existing document is left untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	if err := notebookService.Init(cmd.Context()); err != nil {
		return fmt.Errorf("failed to initialise document: %w", err)
	}

	cmd.Println("Document ready")
	return nil
}
