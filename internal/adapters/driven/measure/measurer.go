// Package measure measures text the way terminals render it, using
// Unicode grapheme cluster segmentation.
package measure

import (
	"github.com/rivo/uniseg"

	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driven"
)

// Ensure Measurer implements the interface.
var _ driven.TextMeasurer = Measurer{}

// Measurer implements driven.TextMeasurer with uniseg.
type Measurer struct{}

// New creates a measurer.
func New() Measurer {
	return Measurer{}
}

// Graphemes returns the number of grapheme clusters in s. A base rune and
// every mark stacked on it count as one.
func (Measurer) Graphemes(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Width returns the monospace display width of s. Marks add no width.
func (Measurer) Width(s string) int {
	return uniseg.StringWidth(s)
}
