package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driven"
)

// mockSources builds seeded PCG sources and records the settings it saw.
type mockSources struct {
	seen []domain.RandomSettings
	err  error
}

func (m *mockSources) Create(settings domain.RandomSettings) (driven.RandomSource, error) {
	m.seen = append(m.seen, settings)
	if m.err != nil {
		return nil, m.err
	}
	return seeded(settings.Seed), nil
}

func (m *mockSources) Names() []domain.RandomSourceName {
	return domain.RandomSourceNames
}

// upperNormaliser upper-cases its input to make its effect visible.
type upperNormaliser struct {
	err error
}

func (n *upperNormaliser) Name() string { return "upper" }

func (n *upperNormaliser) Normalise(_ context.Context, r io.Reader) (io.Reader, error) {
	if n.err != nil {
		return nil, n.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return strings.NewReader(strings.ToUpper(string(data))), nil
}

// mockStage replaces its input with a fixed string.
type mockStage struct {
	name string
	text string
}

type mockPipeline struct {
	stages []mockStage
}

func (p *mockPipeline) Apply(_ context.Context, in io.Reader) (io.Reader, error) {
	out := in
	for _, s := range p.stages {
		out = strings.NewReader(s.text)
	}
	return out, nil
}

func (p *mockPipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.name
	}
	return names
}

type mockStageFactory struct {
	stages map[string]mockStage
}

func (f *mockStageFactory) Pipeline(names ...string) (driven.StagePipeline, error) {
	p := &mockPipeline{}
	for _, name := range names {
		s, ok := f.stages[name]
		if !ok {
			return nil, errors.New("unknown stage: " + name)
		}
		p.stages = append(p.stages, s)
	}
	return p, nil
}

func (f *mockStageFactory) Has(name string) bool {
	_, ok := f.stages[name]
	return ok
}

// fixedMeasurer reports constant measurements.
type fixedMeasurer struct{}

func (fixedMeasurer) Graphemes(string) int { return 7 }
func (fixedMeasurer) Width(string) int     { return 11 }

// failingWriter fails every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }
