package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/zalgo-cli/internal/adapters/driving/mcp"
)

func TestMCPServeCmd_PortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_NoService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	decorationService = nil

	_, err := execute("mcp", "serve")

	assert.ErrorIs(t, err, mcp.ErrMissingDecorationService)
}
