// Package mcp provides an MCP (Model Context Protocol) server adapter for
// notekeeper. It lets AI assistants list, create, edit and delete notebooks
// and notes through the same notebook service the CLI and TUI use.
package mcp

import "errors"

// ErrMissingNotebookService is returned when the notebook service is not provided.
var ErrMissingNotebookService = errors.New("mcp: notebook service is required")
