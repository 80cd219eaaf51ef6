package postprocessors

import (
	"fmt"
	"maps"
	"slices"

	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.StageFactory = (*Registry)(nil)

// BuilderFunc creates a Stage from generic config.
// Config is a map of stage-specific settings parsed from user config.
type BuilderFunc func(cfg map[string]any) (driven.Stage, error)

// Registry maps stage names to their builders.
// It allows dynamic construction of pipelines from flags and configuration.
type Registry struct {
	builders map[string]BuilderFunc
	configs  map[string]map[string]any
}

// NewRegistry creates a new stage registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
		configs:  make(map[string]map[string]any),
	}
}

// Register adds a stage builder to the registry.
// Name should be unique and match the stage's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Configure sets the config passed to a stage's builder by Pipeline.
func (r *Registry) Configure(name string, cfg map[string]any) {
	r.configs[name] = cfg
}

// Build creates a stage by name with the given config.
// Returns error if the stage name is not registered.
func (r *Registry) Build(name string, cfg map[string]any) (driven.Stage, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown stage: %s", name)
	}
	return builder(cfg)
}

// Pipeline builds the named stages, in order, with their configured settings.
func (r *Registry) Pipeline(names ...string) (driven.StagePipeline, error) {
	p := NewPipeline()
	for _, name := range names {
		stage, err := r.Build(name, r.configs[name])
		if err != nil {
			return nil, err
		}
		p.Add(stage)
	}
	return p, nil
}

// Has returns true if a stage with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered stage names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.builders))
}
