package tui

import "errors"

// ErrMissingNotebookService is returned when the notebook service is not provided.
var ErrMissingNotebookService = errors.New("tui: notebook service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")

// ErrNoNotebook is reported when a note action needs an active notebook.
var ErrNoNotebook = errors.New("create a notebook first")
