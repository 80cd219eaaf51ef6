package driven

import (
	"context"
	"io"
)

// Normaliser turns raw input bytes into UTF-8 text for the decoration engine.
type Normaliser interface {
	// Name returns the normaliser name for logging.
	Name() string

	// Normalise wraps r so that reads yield UTF-8. It must not buffer
	// the whole input.
	Normalise(ctx context.Context, r io.Reader) (io.Reader, error)
}
