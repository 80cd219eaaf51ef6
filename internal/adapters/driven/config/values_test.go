package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	assert.Equal(t, 5, Int(5))
	assert.Equal(t, 5, Int(int64(5)))
	assert.Equal(t, 5, Int(uint64(5)))
	assert.Equal(t, 5, Int(5.9))
	assert.Zero(t, Int("5"))
	assert.Zero(t, Int(nil))
}

func TestString_Bool(t *testing.T) {
	assert.Equal(t, "x", String("x"))
	assert.Empty(t, String(1))
	assert.True(t, Bool(true))
	assert.False(t, Bool("true"))
}

func TestStringSlice(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, StringSlice([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "c"}, StringSlice([]any{"a", 1, "c"}))
	assert.Nil(t, StringSlice("a"))
}

func TestStringSlice_ReturnsCopy(t *testing.T) {
	src := []string{"a"}
	got := StringSlice(src)
	got[0] = "b"
	assert.Equal(t, "a", src[0])
}

func TestFlattenNest(t *testing.T) {
	nested := map[string]any{
		"decoration": map[string]any{
			"intensity": "large",
			"kinds":     []any{"above"},
		},
		"random": map[string]any{"seed": int64(7)},
		"top":    true,
	}

	flat := Flatten(nested)
	assert.Equal(t, map[string]any{
		"decoration.intensity": "large",
		"decoration.kinds":     []any{"above"},
		"random.seed":          int64(7),
		"top":                  true,
	}, flat)

	assert.Equal(t, nested, Nest(flat))
}

func TestNest_ValueShadowsPrefix(t *testing.T) {
	got := Nest(map[string]any{"a": 1, "a.b": 2})
	assert.Equal(t, map[string]any{"a": 1}, got)
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b.c", "b.d"}, SortedKeys(map[string]any{"b.d": 1, "a": 2, "b.c": 3}))
}
