package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/notekeeper/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for notekeeper resources.
	uriScheme = "notekeeper://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "notebooks",
		Name:        "notebooks",
		Description: "All notebooks with their note counts",
		MIMEType:    "application/json",
	}, s.handleNotebooksResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "notebooks/{notebookId}/notes",
		Name:        "notebook-notes",
		Description: "Notes in a specific notebook, newest first",
		MIMEType:    "application/json",
	}, s.handleNotesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "notes/{noteId}",
		Name:        "note-text",
		Description: "Title and text of a specific note",
		MIMEType:    "text/plain",
	}, s.handleNoteResource)
}

// handleNotebooksResource returns all notebooks.
func (s *Server) handleNotebooksResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	notebooks, err := s.ports.Notebooks.ListNotebooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notebooks: %w", err)
	}

	infos := make([]NotebookOutput, len(notebooks))
	for i := range notebooks {
		infos[i] = toNotebookOutput(notebooks[i])
	}

	return jsonResult(req.Params.URI, infos)
}

// handleNotesResource returns the notes of a specific notebook.
func (s *Server) handleNotesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// notekeeper://notebooks/{notebookId}/notes
	notebookID := extractNotebookID(req.Params.URI)
	if notebookID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	notes, err := s.ports.Notebooks.ListNotes(ctx, notebookID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	return jsonResult(req.Params.URI, s.toNotesOutput(notebookID, notes).Notes)
}

// handleNoteResource returns a note as plain text: the title on the first
// line, then a blank line and the text.
func (s *Server) handleNoteResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// notekeeper://notes/{noteId}
	noteID := extractNoteID(req.Params.URI)
	if noteID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	note, err := s.ports.Notebooks.GetNote(ctx, noteID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting note: %w", err)
	}

	text := note.Title
	if note.Text != "" {
		text += "\n\n" + note.Text
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		}},
	}, nil
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractNotebookID extracts the notebook ID from a URI like
// notekeeper://notebooks/{notebookId}/notes.
func extractNotebookID(uri string) string {
	const prefix = uriScheme + "notebooks/"
	const suffix = "/notes"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}

// extractNoteID extracts the note ID from a URI like notekeeper://notes/{noteId}.
func extractNoteID(uri string) string {
	const prefix = uriScheme + "notes/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
