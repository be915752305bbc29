package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/notekeeper/internal/adapters/driving/mcp"
	"github.com/custodia-labs/notekeeper/internal/adapters/driving/tui"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
	assert.Contains(t, tuiCmd.Long, "Delete notebook")
}

func TestTUICmd_NoWatchFlag(t *testing.T) {
	flag := tuiCmd.Flags().Lookup("no-watch")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func TestTUICmd_RequiresNotebookService(t *testing.T) {
	origNotebooks, origSettings := notebookService, settingsService
	SetServices(nil, nil)
	defer SetServices(origNotebooks, origSettings)

	_, err := execute(t, "tui")

	assert.ErrorIs(t, err, tui.ErrMissingNotebookService)
}

func TestMCPServeCmd_PortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)

	host := mcpServeCmd.Flags().Lookup("host")
	require.NotNil(t, host)
	assert.Equal(t, "localhost", host.DefValue)
}

func TestMCPServeCmd_RejectsBadPort(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "mcp", "serve", "--port", "70000")

	assert.ErrorContains(t, err, "out of range")
}

func TestMCPServeCmd_RequiresNotebookService(t *testing.T) {
	origNotebooks, origSettings := notebookService, settingsService
	SetServices(nil, nil)
	defer SetServices(origNotebooks, origSettings)

	_, err := execute(t, "mcp", "serve", "--port", "8080")

	assert.ErrorIs(t, err, mcp.ErrMissingNotebookService)
}
