package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/notekeeper/internal/core/domain"
	"github.com/custodia-labs/notekeeper/internal/core/ports/driven"
	"github.com/custodia-labs/notekeeper/internal/logger"
)

// Each command runs one notebook service call and reports the result as a
// message; Update turns the message into a view tree event.

func (a *App) loadNotebooks() tea.Cmd {
	return func() tea.Msg {
		notebooks, err := a.ports.Notebooks.ListNotebooks(a.ctx)
		return messages.NotebooksLoaded{Notebooks: notebooks, Err: err}
	}
}

func (a *App) loadNotes(notebookID string) tea.Cmd {
	return func() tea.Msg {
		notes, err := a.ports.Notebooks.ListNotes(a.ctx, notebookID)
		return messages.NotesLoaded{NotebookID: notebookID, Notes: notes, Err: err}
	}
}

func (a *App) createNotebook(name string) tea.Cmd {
	return func() tea.Msg {
		nb, err := a.ports.Notebooks.CreateNotebook(a.ctx, name)
		return messages.NotebookCreated{Notebook: nb, Err: err}
	}
}

func (a *App) renameNotebook(notebookID, name string) tea.Cmd {
	return func() tea.Msg {
		nb, err := a.ports.Notebooks.RenameNotebook(a.ctx, notebookID, name)
		return messages.NotebookRenamed{Notebook: nb, Err: err}
	}
}

func (a *App) deleteNotebook(notebookID string) tea.Cmd {
	return func() tea.Msg {
		err := a.ports.Notebooks.DeleteNotebook(a.ctx, notebookID)
		return messages.NotebookDeleted{NotebookID: notebookID, Err: err}
	}
}

func (a *App) createNote(notebookID string, fields domain.NoteFields) tea.Cmd {
	return func() tea.Msg {
		note, err := a.ports.Notebooks.CreateNote(a.ctx, notebookID, fields)
		return messages.NoteCreated{Note: note, Err: err}
	}
}

// loadNoteForEdit re-reads the note so the form shows what is stored now,
// not what was rendered when the card was built.
func (a *App) loadNoteForEdit(noteID string) tea.Cmd {
	return func() tea.Msg {
		note, err := a.ports.Notebooks.GetNote(a.ctx, noteID)
		return messages.NoteLoaded{Note: note, Err: err}
	}
}

func (a *App) updateNote(noteID string, fields domain.NoteFields) tea.Cmd {
	return func() tea.Msg {
		note, err := a.ports.Notebooks.UpdateNote(a.ctx, noteID, fields)
		return messages.NoteUpdated{Note: note, Err: err}
	}
}

func (a *App) deleteNote(notebookID, noteID string) tea.Cmd {
	return func() tea.Msg {
		remaining, err := a.ports.Notebooks.DeleteNote(a.ctx, notebookID, noteID)
		return messages.NoteDeleted{NotebookID: notebookID, NoteID: noteID, Remaining: remaining, Err: err}
	}
}

// startWatch runs the watcher in the background, signalling changes on
// a.changes. The watcher stops when the app context is cancelled.
func (a *App) startWatch(w driven.Watcher) tea.Cmd {
	go func() {
		err := w.Watch(a.ctx, func() {
			select {
			case a.changes <- struct{}{}:
			default:
				// A reload is already pending
			}
		})
		if err != nil {
			logger.Warn("document watch stopped: %v", err)
		}
	}()
	return a.waitForChange()
}

// waitForChange blocks until the watcher reports an external write.
func (a *App) waitForChange() tea.Cmd {
	ch := a.changes
	ctx := a.ctx
	return func() tea.Msg {
		select {
		case <-ch:
			return messages.DocumentChanged{}
		case <-ctx.Done():
			return nil
		}
	}
}

// noteFields builds a full update from form values (title, text).
func noteFields(values []string) domain.NoteFields {
	var title, text string
	if len(values) > 0 {
		title = values[0]
	}
	if len(values) > 1 {
		text = values[1]
	}
	return domain.NewNoteFields(title, text)
}

// ensureContext returns ctx or a background context if nil.
func ensureContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
