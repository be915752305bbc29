package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/notekeeper/internal/core/domain"
)

// NotebookOutput describes a notebook without its notes.
type NotebookOutput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	NoteCount int    `json:"note_count"`
}

// NoteOutput describes a single note.
type NoteOutput struct {
	ID         string `json:"id"`
	NotebookID string `json:"notebook_id"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	PostedOn   int64  `json:"posted_on"`
	Posted     string `json:"posted"`
}

// ListNotebooksInput is the input schema for the list_notebooks tool.
type ListNotebooksInput struct{}

// NotebooksOutput is the output schema for the list_notebooks tool.
type NotebooksOutput struct {
	Notebooks []NotebookOutput `json:"notebooks"`
	Count     int              `json:"count"`
}

// CreateNotebookInput is the input schema for the create_notebook tool.
type CreateNotebookInput struct {
	Name string `json:"name" jsonschema:"display name of the new notebook"`
}

// RenameNotebookInput is the input schema for the rename_notebook tool.
type RenameNotebookInput struct {
	NotebookID string `json:"notebook_id" jsonschema:"id of the notebook to rename"`
	Name       string `json:"name" jsonschema:"new display name"`
}

// DeleteNotebookInput is the input schema for the delete_notebook tool.
type DeleteNotebookInput struct {
	NotebookID string `json:"notebook_id" jsonschema:"id of the notebook to delete together with its notes"`
}

// DeletedOutput reports a completed delete.
type DeletedOutput struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// ListNotesInput is the input schema for the list_notes tool.
type ListNotesInput struct {
	NotebookID string `json:"notebook_id" jsonschema:"id of the notebook whose notes to list"`
}

// NotesOutput lists notes, newest first.
type NotesOutput struct {
	NotebookID string       `json:"notebook_id"`
	Notes      []NoteOutput `json:"notes"`
	Count      int          `json:"count"`
}

// CreateNoteInput is the input schema for the create_note tool.
type CreateNoteInput struct {
	NotebookID string `json:"notebook_id" jsonschema:"id of the notebook to add the note to"`
	Title      string `json:"title,omitempty" jsonschema:"note title"`
	Text       string `json:"text,omitempty" jsonschema:"note body"`
}

// GetNoteInput is the input schema for the get_note tool.
type GetNoteInput struct {
	NoteID string `json:"note_id" jsonschema:"id of the note"`
}

// UpdateNoteInput is the input schema for the update_note tool.
// Omitted fields keep their current value.
type UpdateNoteInput struct {
	NoteID string  `json:"note_id" jsonschema:"id of the note to edit"`
	Title  *string `json:"title,omitempty" jsonschema:"new title; omit to keep the current one"`
	Text   *string `json:"text,omitempty" jsonschema:"new body; omit to keep the current one"`
}

// DeleteNoteInput is the input schema for the delete_note tool.
type DeleteNoteInput struct {
	NotebookID string `json:"notebook_id" jsonschema:"id of the notebook holding the note"`
	NoteID     string `json:"note_id" jsonschema:"id of the note to delete"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_notebooks",
		Description: "List all notebooks in creation order with their note counts",
	}, s.handleListNotebooks)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_notebook",
		Description: "Create a new, empty notebook",
	}, s.handleCreateNotebook)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "rename_notebook",
		Description: "Change a notebook's display name",
	}, s.handleRenameNotebook)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_notebook",
		Description: "Delete a notebook and all of its notes",
	}, s.handleDeleteNotebook)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_notes",
		Description: "List the notes in a notebook, newest first",
	}, s.handleListNotes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_note",
		Description: "Add a note to the front of a notebook",
	}, s.handleCreateNote)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_note",
		Description: "Read a single note by id",
	}, s.handleGetNote)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_note",
		Description: "Change a note's title or text; omitted fields are kept",
	}, s.handleUpdateNote)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_note",
		Description: "Delete a note and return the notes left in its notebook",
	}, s.handleDeleteNote)
}

func (s *Server) handleListNotebooks(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListNotebooksInput,
) (*mcp.CallToolResult, NotebooksOutput, error) {
	notebooks, err := s.ports.Notebooks.ListNotebooks(ctx)
	if err != nil {
		return nil, NotebooksOutput{}, err
	}

	output := NotebooksOutput{
		Notebooks: make([]NotebookOutput, len(notebooks)),
		Count:     len(notebooks),
	}
	for i := range notebooks {
		output.Notebooks[i] = toNotebookOutput(notebooks[i])
	}
	return nil, output, nil
}

func (s *Server) handleCreateNotebook(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateNotebookInput,
) (*mcp.CallToolResult, NotebookOutput, error) {
	nb, err := s.ports.Notebooks.CreateNotebook(ctx, input.Name)
	if err != nil {
		return nil, NotebookOutput{}, err
	}
	return nil, toNotebookOutput(nb), nil
}

func (s *Server) handleRenameNotebook(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RenameNotebookInput,
) (*mcp.CallToolResult, NotebookOutput, error) {
	nb, err := s.ports.Notebooks.RenameNotebook(ctx, input.NotebookID, input.Name)
	if err != nil {
		return nil, NotebookOutput{}, err
	}
	return nil, toNotebookOutput(nb), nil
}

func (s *Server) handleDeleteNotebook(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteNotebookInput,
) (*mcp.CallToolResult, DeletedOutput, error) {
	if err := s.ports.Notebooks.DeleteNotebook(ctx, input.NotebookID); err != nil {
		return nil, DeletedOutput{}, err
	}
	return nil, DeletedOutput{ID: input.NotebookID, Deleted: true}, nil
}

func (s *Server) handleListNotes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListNotesInput,
) (*mcp.CallToolResult, NotesOutput, error) {
	notes, err := s.ports.Notebooks.ListNotes(ctx, input.NotebookID)
	if err != nil {
		return nil, NotesOutput{}, err
	}
	return nil, s.toNotesOutput(input.NotebookID, notes), nil
}

func (s *Server) handleCreateNote(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateNoteInput,
) (*mcp.CallToolResult, NoteOutput, error) {
	note, err := s.ports.Notebooks.CreateNote(ctx, input.NotebookID, domain.NewNoteFields(input.Title, input.Text))
	if err != nil {
		return nil, NoteOutput{}, err
	}
	return nil, s.toNoteOutput(note), nil
}

func (s *Server) handleGetNote(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetNoteInput,
) (*mcp.CallToolResult, NoteOutput, error) {
	note, err := s.ports.Notebooks.GetNote(ctx, input.NoteID)
	if err != nil {
		return nil, NoteOutput{}, err
	}
	return nil, s.toNoteOutput(note), nil
}

func (s *Server) handleUpdateNote(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateNoteInput,
) (*mcp.CallToolResult, NoteOutput, error) {
	fields := domain.NoteFields{Title: input.Title, Text: input.Text}
	note, err := s.ports.Notebooks.UpdateNote(ctx, input.NoteID, fields)
	if err != nil {
		return nil, NoteOutput{}, err
	}
	return nil, s.toNoteOutput(note), nil
}

func (s *Server) handleDeleteNote(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteNoteInput,
) (*mcp.CallToolResult, NotesOutput, error) {
	remaining, err := s.ports.Notebooks.DeleteNote(ctx, input.NotebookID, input.NoteID)
	if err != nil {
		return nil, NotesOutput{}, err
	}
	return nil, s.toNotesOutput(input.NotebookID, remaining), nil
}

func toNotebookOutput(nb domain.Notebook) NotebookOutput {
	return NotebookOutput{
		ID:        nb.ID,
		Name:      nb.Name,
		NoteCount: len(nb.Notes),
	}
}

func (s *Server) toNoteOutput(n domain.Note) NoteOutput {
	return NoteOutput{
		ID:         n.ID,
		NotebookID: n.NotebookID,
		Title:      n.Title,
		Text:       n.Text,
		PostedOn:   n.PostedOn,
		Posted:     domain.RelativeTime(n.PostedOn, s.now().UnixMilli()),
	}
}

func (s *Server) toNotesOutput(notebookID string, notes []domain.Note) NotesOutput {
	output := NotesOutput{
		NotebookID: notebookID,
		Notes:      make([]NoteOutput, len(notes)),
		Count:      len(notes),
	}
	for i := range notes {
		output.Notes[i] = s.toNoteOutput(notes[i])
	}
	return output
}
