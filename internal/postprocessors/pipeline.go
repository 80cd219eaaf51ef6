// Package postprocessors chains text stages that run between input
// decoding and the decoration engine.
package postprocessors

import (
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driven"
)

// Ensure Pipeline implements the interface.
var _ driven.StagePipeline = (*Pipeline)(nil)

// Pipeline chains multiple Stages and runs them in order.
type Pipeline struct {
	stages []driven.Stage
}

// NewPipeline creates a new pipeline with the given stages.
// Stages are executed in the order provided.
func NewPipeline(stages ...driven.Stage) *Pipeline {
	return &Pipeline{
		stages: stages,
	}
}

// Apply wraps in with every stage in order. Nothing is read until the
// returned reader is read.
func (p *Pipeline) Apply(ctx context.Context, in io.Reader) (io.Reader, error) {
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}

	out := in
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := stage.Apply(ctx, out)
		if err != nil {
			return nil, fmt.Errorf("stage %s: %w", stage.Name(), err)
		}
		out = next
	}

	return out, nil
}

// Add appends a stage to the pipeline.
func (p *Pipeline) Add(stage driven.Stage) {
	p.stages = append(p.stages, stage)
}

// Len returns the number of stages in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Names returns the stage names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}
