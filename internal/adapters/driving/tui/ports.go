// Package tui provides an interactive terminal user interface for notekeeper.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/notekeeper/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Notebooks owns notebooks and notes.
	Notebooks driving.NotebookService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(notebooks driving.NotebookService) *Ports {
	return &Ports{
		Notebooks: notebooks,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Notebooks == nil {
		return ErrMissingNotebookService
	}
	return nil
}
