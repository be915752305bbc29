package driving

import (
	"context"

	"github.com/custodia-labs/notekeeper/internal/core/domain"
)

// NotebookService is the store: the sole authority for reading, mutating
// and persisting the notebook document.
//
// Every operation re-reads the full document from the persistence medium,
// applies its change in memory and writes the full document back. Lookups
// that fail return an error wrapping domain.ErrNotFound and write nothing.
type NotebookService interface {
	// Init makes sure a document exists, writing an empty one if absent.
	Init(ctx context.Context) error

	// CreateNotebook appends a new, empty notebook.
	CreateNotebook(ctx context.Context, name string) (domain.Notebook, error)

	// ListNotebooks returns all notebooks, oldest first.
	ListNotebooks(ctx context.Context) ([]domain.Notebook, error)

	// RenameNotebook changes a notebook's display name.
	RenameNotebook(ctx context.Context, notebookID, name string) (domain.Notebook, error)

	// DeleteNotebook removes a notebook and all of its notes.
	DeleteNotebook(ctx context.Context, notebookID string) error

	// CreateNote prepends a new note to the notebook.
	CreateNote(ctx context.Context, notebookID string, fields domain.NoteFields) (domain.Note, error)

	// ListNotes returns the notebook's notes, newest first.
	ListNotes(ctx context.Context, notebookID string) ([]domain.Note, error)

	// GetNote returns a single note, searching every notebook.
	GetNote(ctx context.Context, noteID string) (domain.Note, error)

	// UpdateNote merges the set fields into the note, searching every notebook.
	UpdateNote(ctx context.Context, noteID string, fields domain.NoteFields) (domain.Note, error)

	// DeleteNote removes a note and returns the notebook's remaining notes.
	DeleteNote(ctx context.Context, notebookID, noteID string) ([]domain.Note, error)
}
