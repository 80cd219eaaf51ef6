// Package tui provides an interactive live preview of decorated text.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Decoration renders and inspects the preview.
	Decoration driving.DecorationService

	// Settings provides the starting options and persists saved ones. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Decoration == nil {
		return ErrMissingDecorationService
	}
	return nil
}
