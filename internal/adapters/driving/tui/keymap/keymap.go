// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI. Option keys only apply in
// control mode; in edit mode they are typed into the text.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the full key list.
	Help key.Binding

	// Focus switches between editing text and changing options.
	Focus key.Binding

	// Edit returns to editing from control mode.
	Edit key.Binding

	// ToggleAbove toggles marks above.
	ToggleAbove key.Binding

	// ToggleWithin toggles marks through the middle.
	ToggleWithin key.Binding

	// ToggleBelow toggles marks below.
	ToggleBelow key.Binding

	// Intensity cycles through the intensity presets.
	Intensity key.Binding

	// Reseed draws a new seed for the preview.
	Reseed key.Binding

	// Save persists the current options as defaults.
	Save key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "esc"),
			key.WithHelp("tab", "options"),
		),
		Edit: key.NewBinding(
			key.WithKeys("tab", "enter", "e"),
			key.WithHelp("tab", "edit"),
		),
		ToggleAbove: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "above"),
		),
		ToggleWithin: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "within"),
		),
		ToggleBelow: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "below"),
		),
		Intensity: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "intensity"),
		),
		Reseed: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reseed"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save defaults"),
		),
	}
}

// EditHelp returns keybindings shown while editing.
func (k *KeyMap) EditHelp() []key.Binding {
	return []key.Binding{k.Focus}
}

// ControlHelp returns keybindings shown in control mode.
func (k *KeyMap) ControlHelp() []key.Binding {
	return []key.Binding{k.ToggleAbove, k.ToggleWithin, k.ToggleBelow, k.Intensity, k.Edit, k.Help}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleAbove, k.ToggleWithin, k.ToggleBelow},
		{k.Intensity, k.Reseed, k.Save},
		{k.Focus, k.Edit, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
