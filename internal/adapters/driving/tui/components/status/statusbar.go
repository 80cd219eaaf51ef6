// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/zalgo-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/zalgo-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/zalgo-cli/internal/adapters/driving/tui/styles"
)

const ellipsis = "\u2026"

// Bar displays the active options, the last message and key hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	mode    messages.Mode
	summary string
	message string
	isError bool
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		mode:   messages.ModeEdit,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar. The left side is truncated by display
// width when it does not fit next to the key hints.
func (s *Bar) View() string {
	right := s.hints()
	room := s.width - runewidth.StringWidth(right) - 3
	left := runewidth.Truncate(s.leftText(), max(room, 0), ellipsis)

	padding := max(s.width-runewidth.StringWidth(left)-runewidth.StringWidth(right)-2, 1)

	style := s.styles.Muted
	if s.isError {
		style = s.styles.Error
	}
	return s.styles.StatusBar.Width(s.width).Render(
		style.Render(left) + strings.Repeat(" ", padding) + s.styles.Help.Render(right),
	)
}

// leftText is the unstyled left side.
func (s *Bar) leftText() string {
	parts := []string{"[" + s.mode.String() + "]"}
	if s.summary != "" {
		parts = append(parts, s.summary)
	}
	if s.message != "" {
		if s.isError {
			parts = append(parts, "Error: "+s.message)
		} else {
			parts = append(parts, s.message)
		}
	}
	return strings.Join(parts, "  ")
}

// hints renders keybinding hints for the current mode.
func (s *Bar) hints() string {
	var bindings []key.Binding
	if s.mode == messages.ModeControl {
		bindings = s.keymap.ControlHelp()
	} else {
		bindings = s.keymap.EditHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return strings.Join(hints, " | ")
}

// SetMode sets the mode shown.
func (s *Bar) SetMode(mode messages.Mode) {
	s.mode = mode
}

// Mode returns the mode shown.
func (s *Bar) Mode() messages.Mode {
	return s.mode
}

// SetSummary sets the description of the active options.
func (s *Bar) SetSummary(summary string) {
	s.summary = summary
}

// Summary returns the description of the active options.
func (s *Bar) Summary() string {
	return s.summary
}

// SetMessage shows an informational message.
func (s *Bar) SetMessage(message string) {
	s.message = message
	s.isError = false
}

// SetError shows err, or clears the message when err is nil.
func (s *Bar) SetError(err error) {
	if err == nil {
		s.message, s.isError = "", false
		return
	}
	s.message = err.Error()
	s.isError = true
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// IsError reports whether the message is an error.
func (s *Bar) IsError() bool {
	return s.isError
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear removes the message.
func (s *Bar) Clear() {
	s.message = ""
	s.isError = false
}
