package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/notekeeper/internal/core/domain"
)

func TestServer_handleListNotebooks(t *testing.T) {
	ctx := context.Background()

	t.Run("empty document", func(t *testing.T) {
		server, _ := newTestServer(t)

		_, output, err := server.handleListNotebooks(ctx, nil, ListNotebooksInput{})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.NotNil(t, output.Notebooks)
	})

	t.Run("returns notebooks in creation order", func(t *testing.T) {
		server, svc := newTestServer(t)
		work, err := svc.CreateNotebook(ctx, "Work")
		require.NoError(t, err)
		_, err = svc.CreateNotebook(ctx, "Home")
		require.NoError(t, err)
		_, err = svc.CreateNote(ctx, work.ID, domain.NewNoteFields("Plan", ""))
		require.NoError(t, err)

		_, output, err := server.handleListNotebooks(ctx, nil, ListNotebooksInput{})

		require.NoError(t, err)
		require.Equal(t, 2, output.Count)
		assert.Equal(t, "Work", output.Notebooks[0].Name)
		assert.Equal(t, 1, output.Notebooks[0].NoteCount)
		assert.Equal(t, "Home", output.Notebooks[1].Name)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		server, err := NewServer(NewPorts(failingNotebooks{err: errors.New("disk error")}))
		require.NoError(t, err)

		_, _, err = server.handleListNotebooks(ctx, nil, ListNotebooksInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk error")
	})
}

func TestServer_NotebookLifecycle(t *testing.T) {
	ctx := context.Background()
	server, svc := newTestServer(t)

	_, created, err := server.handleCreateNotebook(ctx, nil, CreateNotebookInput{Name: "Wrok"})
	require.NoError(t, err)
	assert.Equal(t, "Wrok", created.Name)
	assert.Equal(t, 0, created.NoteCount)

	_, renamed, err := server.handleRenameNotebook(ctx, nil, RenameNotebookInput{
		NotebookID: created.ID,
		Name:       "Work",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, renamed.ID)
	assert.Equal(t, "Work", renamed.Name)

	_, deleted, err := server.handleDeleteNotebook(ctx, nil, DeleteNotebookInput{NotebookID: created.ID})
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)

	notebooks, err := svc.ListNotebooks(ctx)
	require.NoError(t, err)
	assert.Empty(t, notebooks)
}

func TestServer_handleCreateNotebook_BlankName(t *testing.T) {
	server, _ := newTestServer(t)

	_, _, err := server.handleCreateNotebook(context.Background(), nil, CreateNotebookInput{Name: " "})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestServer_handleDeleteNotebook_Unknown(t *testing.T) {
	server, _ := newTestServer(t)

	_, output, err := server.handleDeleteNotebook(context.Background(), nil, DeleteNotebookInput{NotebookID: "nope"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, output.Deleted)
}

func TestServer_NoteLifecycle(t *testing.T) {
	ctx := context.Background()
	server, svc := newTestServer(t)
	nb, err := svc.CreateNotebook(ctx, "Work")
	require.NoError(t, err)

	_, first, err := server.handleCreateNote(ctx, nil, CreateNoteInput{
		NotebookID: nb.ID,
		Title:      "First",
		Text:       "one",
	})
	require.NoError(t, err)
	assert.Equal(t, nb.ID, first.NotebookID)
	assert.Equal(t, "1 hour ago", first.Posted)

	_, second, err := server.handleCreateNote(ctx, nil, CreateNoteInput{NotebookID: nb.ID, Title: "Second"})
	require.NoError(t, err)

	_, listed, err := server.handleListNotes(ctx, nil, ListNotesInput{NotebookID: nb.ID})
	require.NoError(t, err)
	require.Equal(t, 2, listed.Count)
	assert.Equal(t, second.ID, listed.Notes[0].ID, "newest first")
	assert.Equal(t, first.ID, listed.Notes[1].ID)

	text := "updated"
	_, updated, err := server.handleUpdateNote(ctx, nil, UpdateNoteInput{NoteID: first.ID, Text: &text})
	require.NoError(t, err)
	assert.Equal(t, "First", updated.Title, "omitted title is kept")
	assert.Equal(t, "updated", updated.Text)
	assert.Equal(t, first.PostedOn, updated.PostedOn)

	_, got, err := server.handleGetNote(ctx, nil, GetNoteInput{NoteID: first.ID})
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	_, remaining, err := server.handleDeleteNote(ctx, nil, DeleteNoteInput{NotebookID: nb.ID, NoteID: second.ID})
	require.NoError(t, err)
	require.Equal(t, 1, remaining.Count)
	assert.Equal(t, first.ID, remaining.Notes[0].ID)
}

func TestServer_handleCreateNote_UnknownNotebook(t *testing.T) {
	server, _ := newTestServer(t)

	_, _, err := server.handleCreateNote(context.Background(), nil, CreateNoteInput{NotebookID: "nope"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServer_handleUpdateNote_Unknown(t *testing.T) {
	server, _ := newTestServer(t)
	title := "x"

	_, _, err := server.handleUpdateNote(context.Background(), nil, UpdateNoteInput{NoteID: "nope", Title: &title})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServer_handleDeleteNote_WrongNotebook(t *testing.T) {
	ctx := context.Background()
	server, svc := newTestServer(t)
	work, _ := svc.CreateNotebook(ctx, "Work")
	home, _ := svc.CreateNotebook(ctx, "Home")
	note, err := svc.CreateNote(ctx, work.ID, domain.NewNoteFields("Plan", ""))
	require.NoError(t, err)

	_, _, err = server.handleDeleteNote(ctx, nil, DeleteNoteInput{NotebookID: home.ID, NoteID: note.ID})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.GetNote(ctx, note.ID)
	assert.NoError(t, err)
}
