package services

import (
	"math/rand/v2"
	"strings"

	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driven"
)

// globalSource draws from the math/rand/v2 top-level generator, which is
// safe for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Decorate decorates text using the process-wide random generator.
func Decorate(text string, kind domain.Kind, intensity domain.Intensity) string {
	return DecorateWith(globalSource{}, text, kind, intensity)
}

// DecorateWith decorates text drawing from rng. A deterministic rng in the
// same initial state always yields the same output.
func DecorateWith(rng driven.RandomSource, text string, kind domain.Kind, intensity domain.Intensity) string {
	var b strings.Builder
	b.Grow(decoratedSize(text, kind, intensity))

	d := NewDecorator(rng, strings.NewReader(text), kind, intensity)
	for r := range d.All() {
		b.WriteRune(r)
	}
	return b.String()
}

// Strip removes every mark from text.
func Strip(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	s := NewStripper(strings.NewReader(text))
	for r := range s.All() {
		b.WriteRune(r)
	}
	return b.String()
}

// maxPrealloc caps the capacity DecorateWith reserves up front.
const maxPrealloc = 64 << 20

// decoratedSize returns a byte capacity for decorating text: exact when the
// intensity allows it, the input size otherwise.
func decoratedSize(text string, kind domain.Kind, intensity domain.Intensity) int {
	base := 0
	for _, r := range text {
		if !domain.IsMark(r) {
			base++
		}
	}
	hint := intensity.SizeHint(kind, base)
	marks := hint.Lower - base
	if marks <= 0 {
		return len(text)
	}
	if marks > (maxPrealloc-len(text))/domain.MarkEncodedLen {
		return max(len(text), maxPrealloc)
	}
	return len(text) + marks*domain.MarkEncodedLen
}
