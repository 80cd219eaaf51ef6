package driven

import "github.com/custodia-labs/zalgo-cli/internal/core/domain"

// RandomSource draws uniform integers for the decoration engine.
// A *rand.Rand from math/rand/v2 satisfies it.
//
// Implementations need not be safe for concurrent use; an engine borrows
// its source for its whole lifetime.
type RandomSource interface {
	// IntN returns a uniform integer in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// RandomSourceFactory creates random sources from settings.
type RandomSourceFactory interface {
	// Create returns a source for the named generator.
	// A seed is only honoured when the generator is seedable.
	Create(settings domain.RandomSettings) (RandomSource, error)

	// Names returns the generator names this factory can build.
	Names() []domain.RandomSourceName
}
