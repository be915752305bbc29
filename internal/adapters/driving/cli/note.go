package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/notekeeper/internal/core/domain"
)

// now is the clock used for relative times. Tests replace it.
var now = time.Now

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
	Long:  `Create, list, show, update, or delete notes inside a notebook.`,
}

var noteListCmd = &cobra.Command{
	Use:     "list [notebook-id]",
	Aliases: []string{"ls"},
	Short:   "List notes in a notebook, newest first",
	Args:    cobra.ExactArgs(1),
	RunE:    runNoteList,
}

var noteCreateCmd = &cobra.Command{
	Use:     "create [notebook-id]",
	Aliases: []string{"add"},
	Short:   "Add a note to the front of a notebook",
	Args:    cobra.ExactArgs(1),
	RunE:    runNoteCreate,
}

var noteShowCmd = &cobra.Command{
	Use:   "show [note-id]",
	Short: "Show a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteShow,
}

var noteUpdateCmd = &cobra.Command{
	Use:     "update [note-id]",
	Aliases: []string{"edit"},
	Short:   "Change a note's title or text",
	Long: `Update a note in place. Only the fields passed as flags change; the note
keeps its notebook and its original posting time.`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteUpdate,
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete [notebook-id] [note-id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(2),
	RunE:  runNoteDelete,
}

var (
	noteListJSON  bool
	noteTitle     string
	noteText      string
	noteDeleteYes bool
)

func init() {
	noteListCmd.Flags().BoolVar(&noteListJSON, "json", false, "Print notes as JSON")

	noteCreateCmd.Flags().StringVarP(&noteTitle, "title", "t", "", "Note title")
	noteCreateCmd.Flags().StringVarP(&noteText, "text", "m", "", "Note text")

	noteUpdateCmd.Flags().StringVarP(&noteTitle, "title", "t", "", "New title")
	noteUpdateCmd.Flags().StringVarP(&noteText, "text", "m", "", "New text")

	noteDeleteCmd.Flags().BoolVarP(&noteDeleteYes, "yes", "y", false, "Delete without asking")

	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteCreateCmd)
	noteCmd.AddCommand(noteShowCmd)
	noteCmd.AddCommand(noteUpdateCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	rootCmd.AddCommand(noteCmd)
}

func runNoteList(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	notebookID := args[0]
	notes, err := notebookService.ListNotes(cmd.Context(), notebookID)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	if noteListJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(notes)
	}

	if len(notes) == 0 {
		cmd.Printf("No notes in notebook %s\n", notebookID)
		return nil
	}

	nowMillis := now().UnixMilli()
	for i := range notes {
		n := &notes[i]
		cmd.Printf("  %s  %s  (%s)\n", n.ID, displayTitle(n.Title), domain.RelativeTime(n.PostedOn, nowMillis))
	}
	cmd.Println()
	cmd.Printf("Total: %d note%s\n", len(notes), plural(len(notes)))
	return nil
}

func runNoteCreate(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	note, err := notebookService.CreateNote(cmd.Context(), args[0], domain.NewNoteFields(noteTitle, noteText))
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	cmd.Printf("Created note %s to notebook %s\n", note.ID, note.NotebookID)
	return nil
}

func runNoteShow(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	note, err := notebookService.GetNote(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}

	cmd.Println(displayTitle(note.Title))
	cmd.Println(strings.Repeat("=", len([]rune(displayTitle(note.Title)))))
	cmd.Printf("ID:       %s\n", note.ID)
	cmd.Printf("Notebook: %s\n", note.NotebookID)
	cmd.Printf("Posted:   %s\n", domain.RelativeTime(note.PostedOn, now().UnixMilli()))
	if note.Text != "" {
		cmd.Println()
		cmd.Println(note.Text)
	}
	return nil
}

func runNoteUpdate(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	var fields domain.NoteFields
	if cmd.Flags().Changed("title") {
		title := noteTitle
		fields.Title = &title
	}
	if cmd.Flags().Changed("text") {
		text := noteText
		fields.Text = &text
	}
	if fields.IsEmpty() {
		return errors.New("nothing to change; pass --title or --text")
	}

	note, err := notebookService.UpdateNote(cmd.Context(), args[0], fields)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}

	cmd.Printf("Updated note %s\n", note.ID)
	return nil
}

func runNoteDelete(cmd *cobra.Command, args []string) error {
	if notebookService == nil {
		return errors.New("notebook service not configured")
	}

	notebookID, noteID := args[0], args[1]
	if !noteDeleteYes {
		ok, err := confirm(cmd, fmt.Sprintf("Delete note %s?", noteID))
		if err != nil {
			return err
		}
		if !ok {
			cmd.Println("Cancelled")
			return nil
		}
	}

	remaining, err := notebookService.DeleteNote(cmd.Context(), notebookID, noteID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	cmd.Printf("Deleted note %s (%d note%s left)\n", noteID, len(remaining), plural(len(remaining)))
	return nil
}

func displayTitle(title string) string {
	if title == "" {
		return "(Untitled)"
	}
	return title
}
