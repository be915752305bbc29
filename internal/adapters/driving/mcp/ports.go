package mcp

import (
	"github.com/custodia-labs/notekeeper/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Notebooks owns notebooks and notes.
	Notebooks driving.NotebookService
}

// NewPorts creates a Ports aggregate for the given notebook service.
func NewPorts(notebooks driving.NotebookService) *Ports {
	return &Ports{Notebooks: notebooks}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Notebooks == nil {
		return ErrMissingNotebookService
	}
	return nil
}
