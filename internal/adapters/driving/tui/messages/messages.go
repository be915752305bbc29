// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/notekeeper/internal/core/domain"
)

// Focus identifies which pane receives navigation keys.
type Focus int

const (
	// FocusSidebar is the notebook list.
	FocusSidebar Focus = iota
	// FocusPanel is the note list of the active notebook.
	FocusPanel
)

// String returns the string representation of the focus.
func (f Focus) String() string {
	switch f {
	case FocusSidebar:
		return "sidebar"
	case FocusPanel:
		return "panel"
	default:
		return "unknown"
	}
}

// Toggle returns the other pane.
func (f Focus) Toggle() Focus {
	if f == FocusSidebar {
		return FocusPanel
	}
	return FocusSidebar
}

// FormKind identifies what an open form edits.
type FormKind int

const (
	// FormNewNotebook asks for a notebook name.
	FormNewNotebook FormKind = iota + 1
	// FormRenameNotebook asks for a new name for an existing notebook.
	FormRenameNotebook
	// FormNewNote asks for a title and text.
	FormNewNote
	// FormEditNote edits the title and text of an existing note.
	FormEditNote
)

// String returns the string representation of the form kind.
func (k FormKind) String() string {
	switch k {
	case FormNewNotebook:
		return "new_notebook"
	case FormRenameNotebook:
		return "rename_notebook"
	case FormNewNote:
		return "new_note"
	case FormEditNote:
		return "edit_note"
	default:
		return "unknown"
	}
}

// Title returns the heading shown above the form.
func (k FormKind) Title() string {
	switch k {
	case FormNewNotebook:
		return "New notebook"
	case FormRenameNotebook:
		return "Rename notebook"
	case FormNewNote:
		return "Add note"
	case FormEditNote:
		return "Edit note"
	default:
		return ""
	}
}

// Fields returns the input labels for the form kind.
func (k FormKind) Fields() []string {
	switch k {
	case FormNewNotebook, FormRenameNotebook:
		return []string{"Name"}
	case FormNewNote, FormEditNote:
		return []string{"Title", "Text"}
	default:
		return nil
	}
}

// FormSubmitted carries the values entered in a form.
type FormSubmitted struct {
	Kind     FormKind
	TargetID string
	Values   []string
}

// FormCancelled signals the form was dismissed without saving.
type FormCancelled struct {
	Kind FormKind
}

// NotebooksLoaded carries the notebook list from the service.
type NotebooksLoaded struct {
	Notebooks []domain.Notebook
	Err       error
}

// NotebookCreated signals a notebook was created.
type NotebookCreated struct {
	Notebook domain.Notebook
	Err      error
}

// NotebookRenamed signals a notebook was renamed.
type NotebookRenamed struct {
	Notebook domain.Notebook
	Err      error
}

// NotebookDeleted signals a notebook and its notes were removed.
type NotebookDeleted struct {
	NotebookID string
	Err        error
}

// NotesLoaded carries the notes of one notebook.
type NotesLoaded struct {
	NotebookID string
	Notes      []domain.Note
	Err        error
}

// NoteCreated signals a note was created.
type NoteCreated struct {
	Note domain.Note
	Err  error
}

// NoteLoaded carries the latest stored state of a note about to be edited.
type NoteLoaded struct {
	Note domain.Note
	Err  error
}

// NoteUpdated signals a note was edited.
type NoteUpdated struct {
	Note domain.Note
	Err  error
}

// NoteDeleted signals a note was removed. Remaining holds the notes left
// in its notebook.
type NoteDeleted struct {
	NotebookID string
	NoteID     string
	Remaining  []domain.Note
	Err        error
}

// DocumentChanged signals another process rewrote the stored document.
type DocumentChanged struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
