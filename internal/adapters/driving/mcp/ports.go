package mcp

import (
	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Decoration decorates, strips and inspects text.
	Decoration driving.DecorationService

	// Settings supplies defaults for omitted tool arguments. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Decoration == nil {
		return ErrMissingDecorationService
	}
	return nil
}
