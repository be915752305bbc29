package mcp

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/notekeeper/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/notekeeper/internal/core/domain"
	"github.com/custodia-labs/notekeeper/internal/core/ports/driving"
	"github.com/custodia-labs/notekeeper/internal/core/services"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type counterIDs struct{ n int }

func (g *counterIDs) NewID() string {
	g.n++
	return "id-" + strconv.Itoa(g.n)
}

// newTestServer returns a server over a real notebook service backed by
// memory. Notes are posted one hour before testNow.
func newTestServer(t *testing.T) (*Server, *services.NotebookService) {
	t.Helper()

	svc := services.NewNotebookService(
		memory.NewKeyValueStore(),
		services.WithIDGenerator(&counterIDs{}),
		services.WithClock(func() time.Time { return testNow.Add(-time.Hour) }),
	)
	server, err := NewServer(NewPorts(svc), WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)
	return server, svc
}

// failingNotebooks fails every read. Other calls are not used by the tests
// that install it.
type failingNotebooks struct {
	driving.NotebookService
	err error
}

func (f failingNotebooks) ListNotebooks(context.Context) ([]domain.Notebook, error) {
	return nil, f.err
}

func (f failingNotebooks) ListNotes(context.Context, string) ([]domain.Note, error) {
	return nil, f.err
}

func (f failingNotebooks) GetNote(context.Context, string) (domain.Note, error) {
	return domain.Note{}, f.err
}
