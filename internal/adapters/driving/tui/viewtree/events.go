package viewtree

import "github.com/custodia-labs/notekeeper/internal/core/domain"

// Op is the kind of change an event describes.
type Op int

// Event operations.
const (
	Inserted Op = iota + 1
	Replaced
	Removed
	Reset
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Replaced:
		return "replaced"
	case Removed:
		return "removed"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

// Entity is the kind of record an event concerns.
type Entity int

// Event entities.
const (
	EntityNotebook Entity = iota + 1
	EntityNote
)

// String returns the entity name.
func (e Entity) String() string {
	switch e {
	case EntityNotebook:
		return "notebook"
	case EntityNote:
		return "note"
	default:
		return "unknown"
	}
}

// Event is the result of one notebook service call.
type Event interface {
	Op() Op
	Entity() Entity
}

// NotebookInserted follows CreateNotebook.
type NotebookInserted struct {
	Notebook domain.Notebook
}

// NotebooksReset follows ListNotebooks.
type NotebooksReset struct {
	Notebooks []domain.Notebook
}

// NotebookReplaced follows RenameNotebook. Renaming an inactive notebook
// only relabels it; the selection does not move to it.
type NotebookReplaced struct {
	Notebook domain.Notebook
}

// NotebookRemoved follows DeleteNotebook.
type NotebookRemoved struct {
	NotebookID string
}

// NoteInserted follows CreateNote.
type NoteInserted struct {
	Note domain.Note
}

// NotesReset follows ListNotes.
type NotesReset struct {
	NotebookID string
	Notes      []domain.Note
}

// NoteReplaced follows UpdateNote.
type NoteReplaced struct {
	Note domain.Note
}

// NoteRemoved follows DeleteNote. NotesRemain reports whether the notebook
// still holds any notes.
type NoteRemoved struct {
	NoteID      string
	NotesRemain bool
}

// NewNoteRemoved builds the event from DeleteNote's remaining notes.
func NewNoteRemoved(noteID string, remaining []domain.Note) NoteRemoved {
	return NoteRemoved{NoteID: noteID, NotesRemain: len(remaining) > 0}
}

func (NotebookInserted) Op() Op { return Inserted }
func (NotebooksReset) Op() Op { return Reset }
func (NotebookReplaced) Op() Op { return Replaced }
func (NotebookRemoved) Op() Op { return Removed }
func (NoteInserted) Op() Op { return Inserted }
func (NotesReset) Op() Op { return Reset }
func (NoteReplaced) Op() Op { return Replaced }
func (NoteRemoved) Op() Op { return Removed }

func (NotebookInserted) Entity() Entity { return EntityNotebook }
func (NotebooksReset) Entity() Entity { return EntityNotebook }
func (NotebookReplaced) Entity() Entity { return EntityNotebook }
func (NotebookRemoved) Entity() Entity { return EntityNotebook }
func (NoteInserted) Entity() Entity { return EntityNote }
func (NotesReset) Entity() Entity { return EntityNote }
func (NoteReplaced) Entity() Entity { return EntityNote }
func (NoteRemoved) Entity() Entity { return EntityNote }
