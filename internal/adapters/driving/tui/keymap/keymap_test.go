package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "q")
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_ClassToggles(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, []string{"1"}, km.ToggleAbove.Keys())
	assert.Equal(t, []string{"2"}, km.ToggleWithin.Keys())
	assert.Equal(t, []string{"3"}, km.ToggleBelow.Keys())
}

func TestDefaultKeyMap_FocusAndEdit(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Focus.Keys(), "tab")
	assert.Contains(t, km.Focus.Keys(), "esc")
	assert.Contains(t, km.Edit.Keys(), "tab")
	assert.Contains(t, km.Edit.Keys(), "enter")
}

func TestEditHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.EditHelp()

	require.Len(t, bindings, 1)
	assert.Equal(t, km.Focus, bindings[0])
}

func TestControlHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ControlHelp()

	assert.Len(t, bindings, 6)
	assert.Equal(t, km.ToggleAbove, bindings[0])
	assert.Equal(t, km.Help, bindings[5])
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FullHelp()

	assert.Len(t, bindings, 3)    // 3 groups
	assert.Len(t, bindings[0], 3) // class toggles
	assert.Len(t, bindings[1], 3) // intensity, reseed, save
	assert.Len(t, bindings[2], 4) // focus, edit, help, quit
}

func TestMatches_True(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("?", km.Help))
	assert.True(t, Matches("i", km.Intensity))
	assert.True(t, Matches("r", km.Reseed))
}

func TestMatches_False(t *testing.T) {
	km := DefaultKeyMap()

	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("a", km.Help))
	assert.False(t, Matches("2", km.ToggleAbove))
}

func TestBindings_HaveHelp(t *testing.T) {
	km := DefaultKeyMap()

	testCases := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"Help", km.Help},
		{"Focus", km.Focus},
		{"Edit", km.Edit},
		{"ToggleAbove", km.ToggleAbove},
		{"ToggleWithin", km.ToggleWithin},
		{"ToggleBelow", km.ToggleBelow},
		{"Intensity", km.Intensity},
		{"Reseed", km.Reseed},
		{"Save", km.Save},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			help := tc.binding.Help()
			assert.NotEmpty(t, help.Key, "binding should have help key")
			assert.NotEmpty(t, help.Desc, "binding should have help description")
		})
	}
}
