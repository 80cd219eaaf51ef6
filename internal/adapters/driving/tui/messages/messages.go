// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
)

// PreviewRendered carries a finished rendering back to the model.
// Seq identifies the request so stale renderings can be dropped.
type PreviewRendered struct {
	Seq   int
	Text  string
	Stats domain.TextStats
	Err   error
}

// SettingsSaved reports the outcome of saving the current options.
type SettingsSaved struct {
	Err error
}

// Mode says where key presses go.
type Mode int

const (
	// ModeEdit sends keys to the text input.
	ModeEdit Mode = iota
	// ModeControl interprets keys as option toggles.
	ModeControl
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "edit"
	case ModeControl:
		return "control"
	default:
		return "unknown"
	}
}
