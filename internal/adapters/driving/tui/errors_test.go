package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrMissingNotebookService, "notebook service"},
		{ErrInvalidPorts, "invalid ports"},
		{ErrNoNotebook, "create a notebook first"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Contains(t, tt.err.Error(), tt.want)

			wrapped := fmt.Errorf("starting tui: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.err))
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrMissingNotebookService, ErrInvalidPorts))
	assert.False(t, errors.Is(ErrNoNotebook, ErrMissingNotebookService))
}
