package driven

import (
	"context"
	"io"
)

// Stage transforms UTF-8 text before it reaches the decoration engine.
// Stages are chained in a pipeline (e.g. strip, then upper).
type Stage interface {
	// Name returns the stage name for logging and configuration.
	Name() string

	// Apply wraps in with the stage's transformation. The returned reader
	// must be lazy: nothing is read from in until it is read from.
	Apply(ctx context.Context, in io.Reader) (io.Reader, error)
}

// StagePipeline chains multiple Stages.
type StagePipeline interface {
	// Apply runs the input through all stages in order.
	Apply(ctx context.Context, in io.Reader) (io.Reader, error)

	// Names returns the stage names in execution order.
	Names() []string
}

// StageFactory builds pipelines from stage names.
type StageFactory interface {
	// Pipeline returns a pipeline running the named stages in order.
	Pipeline(names ...string) (StagePipeline, error)

	// Has reports whether a stage name is known.
	Has(name string) bool
}
