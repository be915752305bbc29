package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var notebookCmd = &cobra.Command{
	Use:     "notebook",
	Aliases: []string{"nb"},
	Short:   "Manage notebooks",
	Long:    `Create, list, rename, or delete notebooks. Deleting a notebook deletes its notes.`,
}

var notebookListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List notebooks",
	Args:    cobra.NoArgs,
	RunE:    runNotebookList,
}

var notebookCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a notebook",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotebookCreate,
}

var notebookRenameCmd = &cobra.Command{
	Use:   "rename [notebook-id] [name]",
	Short: "Rename a notebook",
	Args:  cobra.ExactArgs(2),
	RunE:  runNotebookRename,
}

var notebookDeleteCmd = &cobra.Command{
	Use:   "delete [notebook-id]",
	Short: "Delete a notebook and all its notes",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotebookDelete,
}

var (
	notebookListJSON  bool
	notebookDeleteYes bool
)

func init() {
	notebookListCmd.Flags().BoolVar(&notebookListJSON, "json", false, "Print notebooks as JSON")
	notebookDeleteCmd.Flags().BoolVarP(&notebookDeleteYes, "yes", "y", false, "Delete without asking")

	notebookCmd.AddCommand(notebookListCmd)
	notebookCmd.AddCommand(notebookCreateCmd)
	notebookCmd.AddCommand(notebookRenameCmd)
	notebookCmd.AddCommand(notebookDeleteCmd)
	rootCmd.AddCommand(notebookCmd)
}

func runNotebookList(cmd *cobra.Command, _ []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	notebooks, err := notebookService.ListNotebooks(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list notebooks: %w", err)
	}

	if notebookListJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(notebooks)
	}

	if len(notebooks) == 0 {
		cmd.Println("No notebooks yet. Create one with 'notekeeper notebook create <name>'.")
		return nil
	}

	for i := range notebooks {
		nb := &notebooks[i]
		cmd.Printf("  %s  %s (%d note%s)\n", nb.ID, nb.Name, len(nb.Notes), plural(len(nb.Notes)))
	}
	cmd.Println()
	cmd.Printf("Total: %d notebook%s\n", len(notebooks), plural(len(notebooks)))
	return nil
}

func runNotebookCreate(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	nb, err := notebookService.CreateNotebook(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to create notebook: %w", err)
	}

	cmd.Printf("Created notebook %q (%s)\n", nb.Name, nb.ID)
	return nil
}

func runNotebookRename(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	nb, err := notebookService.RenameNotebook(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to rename notebook: %w", err)
	}

	cmd.Printf("Renamed notebook %s to %q\n", nb.ID, nb.Name)
	return nil
}

func runNotebookDelete(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	notebookID := args[0]
	if !notebookDeleteYes {
		ok, err := confirm(cmd, fmt.Sprintf("Delete notebook %s and all its notes?", notebookID))
		if err != nil {
			return err
		}
		if !ok {
			cmd.Println("Cancelled")
			return nil
		}
	}

	if err := notebookService.DeleteNotebook(cmd.Context(), notebookID); err != nil {
		return fmt.Errorf("failed to delete notebook: %w", err)
	}

	cmd.Printf("Deleted notebook %s\n", notebookID)
	return nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
