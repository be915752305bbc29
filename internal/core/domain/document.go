package domain

import (
	"fmt"
	"strings"
)

// Document is the single root structure persisted by the store.
// It is always read and written as a whole.
type Document struct {
	// Notebooks holds every notebook in creation order (oldest first).
	Notebooks []Notebook `json:"notebooks"`
}

// Notebook groups notes under a display name.
type Notebook struct {
	// ID is the unique identifier, fixed at creation.
	ID string `json:"id"`

	// Name is the display name. Mutable via rename.
	Name string `json:"name"`

	// Notes holds the notebook's notes, newest first.
	Notes []Note `json:"notes"`
}

// Note is a titled piece of text owned by exactly one notebook.
type Note struct {
	// ID is the unique identifier, fixed at creation.
	ID string `json:"id"`

	// NotebookID links to the owning Notebook. Never reassigned.
	NotebookID string `json:"notebookId"`

	// Title is the display title.
	Title string `json:"title"`

	// Text is the note body.
	Text string `json:"text"`

	// PostedOn is the creation time in milliseconds since the Unix epoch.
	// It is not updated when the note is edited.
	PostedOn int64 `json:"postedOn"`
}

// NoteFields carries the editable fields of a note.
// A nil field is left untouched when merged into an existing note.
type NoteFields struct {
	Title *string
	Text  *string
}

// NewNoteFields returns fields with both title and text set.
func NewNoteFields(title, text string) NoteFields {
	return NoteFields{Title: &title, Text: &text}
}

// IsEmpty returns true if no field is set.
func (f NoteFields) IsEmpty() bool {
	return f.Title == nil && f.Text == nil
}

// Merge applies the set fields to the note. ID, NotebookID and PostedOn
// are preserved.
func (f NoteFields) Merge(n *Note) {
	if f.Title != nil {
		n.Title = *f.Title
	}
	if f.Text != nil {
		n.Text = *f.Text
	}
}

// NewDocument returns the empty document written on first run.
func NewDocument() Document {
	return Document{Notebooks: []Notebook{}}
}

// FindNotebook returns a pointer into the document for the notebook with
// the given ID.
func (d *Document) FindNotebook(id string) (*Notebook, bool) {
	i := d.NotebookIndex(id)
	if i < 0 {
		return nil, false
	}
	return &d.Notebooks[i], true
}

// NotebookIndex returns the position of the notebook, or -1 if absent.
func (d *Document) NotebookIndex(id string) int {
	for i := range d.Notebooks {
		if d.Notebooks[i].ID == id {
			return i
		}
	}
	return -1
}

// FindNote scans every notebook for a note with the given ID.
func (d *Document) FindNote(id string) (*Note, bool) {
	for i := range d.Notebooks {
		nb := &d.Notebooks[i]
		if j := nb.NoteIndex(id); j >= 0 {
			return &nb.Notes[j], true
		}
	}
	return nil, false
}

// NoteIndex returns the position of the note within the notebook, or -1.
func (n *Notebook) NoteIndex(id string) int {
	for i := range n.Notes {
		if n.Notes[i].ID == id {
			return i
		}
	}
	return -1
}

// Validate checks that every notebook has an id and every note sits in the
// notebook it names. Duplicate ids are not an error here; see DuplicateIDs.
func (d *Document) Validate() error {
	for i := range d.Notebooks {
		nb := &d.Notebooks[i]
		if strings.TrimSpace(nb.ID) == "" {
			return fmt.Errorf("notebook at index %d has no id: %w", i, ErrCorruptDocument)
		}
		for j := range nb.Notes {
			note := &nb.Notes[j]
			if note.NotebookID != nb.ID {
				return fmt.Errorf("note %q belongs to %q but is stored in %q: %w",
					note.ID, note.NotebookID, nb.ID, ErrCorruptDocument)
			}
		}
	}
	return nil
}

// DuplicateIDs lists notebook ids and note ids that occur more than once,
// each reported once in document order. Timestamp ids from two processes
// can collide, so a document with duplicates stays usable: lookups act on
// the first match.
func (d *Document) DuplicateIDs() []string {
	var dups []string
	notebooks := make(map[string]int, len(d.Notebooks))
	notes := make(map[string]int)
	for i := range d.Notebooks {
		nb := &d.Notebooks[i]
		notebooks[nb.ID]++
		if notebooks[nb.ID] == 2 {
			dups = append(dups, nb.ID)
		}
		for j := range nb.Notes {
			id := nb.Notes[j].ID
			notes[id]++
			if notes[id] == 2 {
				dups = append(dups, id)
			}
		}
	}
	return dups
}

// HasID reports whether any notebook or note uses id.
func (d *Document) HasID(id string) bool {
	if d.NotebookIndex(id) >= 0 {
		return true
	}
	_, ok := d.FindNote(id)
	return ok
}

// Normalise replaces nil slices with empty ones so that a document decoded
// from storage serialises the same way as one built in memory.
func (d *Document) Normalise() {
	if d.Notebooks == nil {
		d.Notebooks = []Notebook{}
	}
	for i := range d.Notebooks {
		if d.Notebooks[i].Notes == nil {
			d.Notebooks[i].Notes = []Note{}
		}
	}
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := Document{Notebooks: make([]Notebook, len(d.Notebooks))}
	for i := range d.Notebooks {
		out.Notebooks[i] = d.Notebooks[i].Clone()
	}
	return out
}

// Clone returns a copy of the notebook with its own notes slice.
func (n Notebook) Clone() Notebook {
	notes := make([]Note, len(n.Notes))
	copy(notes, n.Notes)
	n.Notes = notes
	return n
}

// NoteCount returns the total number of notes across all notebooks.
func (d *Document) NoteCount() int {
	total := 0
	for i := range d.Notebooks {
		total += len(d.Notebooks[i].Notes)
	}
	return total
}
