package services

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/transform"

	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driven"
	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driving"
	"github.com/custodia-labs/zalgo-cli/internal/logger"
)

// Ensure DecorationService implements the interface.
var _ driving.DecorationService = (*DecorationService)(nil)

// DecorationService decorates, strips and inspects text.
type DecorationService struct {
	sources    driven.RandomSourceFactory
	normaliser driven.Normaliser
	stages     driven.StageFactory
	measurer   driven.TextMeasurer
}

// NewDecorationService creates a new decoration service.
// normaliser, stages and measurer may be nil.
func NewDecorationService(
	sources driven.RandomSourceFactory,
	normaliser driven.Normaliser,
	stages driven.StageFactory,
	measurer driven.TextMeasurer,
) *DecorationService {
	return &DecorationService{
		sources:    sources,
		normaliser: normaliser,
		stages:     stages,
		measurer:   measurer,
	}
}

// Decorate returns text decorated according to opts.
func (s *DecorationService) Decorate(ctx context.Context, text string, opts domain.Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	rng, err := s.source(opts.Random)
	if err != nil {
		return "", err
	}
	return DecorateWith(rng, text, opts.Kind, opts.Intensity), nil
}

// Stream decorates r into w. Input passes through the normaliser and the
// requested stages before it reaches the engine. The context is checked
// before every output rune.
func (s *DecorationService) Stream(
	ctx context.Context,
	w io.Writer,
	r io.Reader,
	req driving.StreamRequest,
) (driving.StreamResult, error) {
	var result driving.StreamResult

	logger.Section("Decorate")
	logger.Debug("Kind: %s", req.Options.Kind)
	logger.Debug("Intensity: %s", req.Options.Intensity)
	logger.Debug("Random source: %s (seeded=%t)", req.Options.Random.Source, req.Options.Random.HasSeed)

	rng, err := s.source(req.Options.Random)
	if err != nil {
		return result, err
	}

	in, err := s.prepare(ctx, r, req.Stages)
	if err != nil {
		return result, err
	}

	counter := &baseCounter{RuneReader: bufio.NewReader(in)}
	dec := NewDecorator(rng, counter, req.Options.Kind, req.Options.Intensity)

	bw := bufio.NewWriter(w)
	for out := range dec.All() {
		if err := ctx.Err(); err != nil {
			result.BaseRunes = counter.base
			return result, err
		}
		n, err := bw.WriteRune(out)
		result.Written += int64(n)
		if err != nil {
			result.BaseRunes = counter.base
			return result, fmt.Errorf("write output: %w", err)
		}
	}
	result.BaseRunes = counter.base

	if err := dec.Err(); err != nil {
		return result, fmt.Errorf("read input: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return result, fmt.Errorf("write output: %w", err)
	}

	logger.Debug("Decorated %d base runes into %d bytes", result.BaseRunes, result.Written)
	return result, nil
}

// prepare applies the normaliser and the named stages to r.
func (s *DecorationService) prepare(ctx context.Context, r io.Reader, stages []string) (io.Reader, error) {
	in := r
	if s.normaliser != nil {
		normalised, err := s.normaliser.Normalise(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("normaliser %s: %w", s.normaliser.Name(), err)
		}
		in = normalised
	}

	if len(stages) == 0 {
		return in, nil
	}
	if s.stages == nil {
		return nil, fmt.Errorf("stages %v: %w", stages, domain.ErrNotConfigured)
	}
	pipeline, err := s.stages.Pipeline(stages...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Stages: %s", strings.Join(pipeline.Names(), " -> "))
	return pipeline.Apply(ctx, in)
}

// Strip removes every mark from text.
func (s *DecorationService) Strip(text string) string {
	return Strip(text)
}

// StripStream removes every mark while copying r to w.
// It returns the number of bytes written.
func (s *DecorationService) StripStream(ctx context.Context, w io.Writer, r io.Reader) (int64, error) {
	in, err := s.prepare(ctx, r, nil)
	if err != nil {
		return 0, err
	}

	stripped := transform.NewReader(in, StripTransformer())
	n, err := io.Copy(w, contextReader{ctx: ctx, r: stripped})
	if err != nil {
		if errors.Is(err, ctx.Err()) {
			return n, err
		}
		return n, fmt.Errorf("strip: %w", err)
	}
	logger.Debug("Stripped to %d bytes", n)
	return n, nil
}

// IsMark reports whether r is a decoration mark.
func (s *DecorationService) IsMark(r rune) bool {
	return domain.IsMark(r)
}

// Marks returns the alphabet of the selected classes in table order.
func (s *DecorationService) Marks(kind domain.Kind) []rune {
	marks := make([]rune, 0, domain.TotalMarks)
	for _, c := range kind.Classes() {
		marks = append(marks, c.Marks()...)
	}
	return marks
}

// Inspect counts runes, marks and graphemes of text.
func (s *DecorationService) Inspect(text string) domain.TextStats {
	var stats domain.TextStats
	for _, r := range text {
		stats.Runes++
		if c, ok := domain.ClassOf(r); ok {
			stats.Marks[c]++
			continue
		}
		stats.Base++
	}
	if s.measurer != nil {
		stats.Graphemes = s.measurer.Graphemes(text)
		stats.Width = s.measurer.Width(text)
	}
	return stats
}

// InspectStream decodes r through the normaliser and inspects the text.
func (s *DecorationService) InspectStream(ctx context.Context, r io.Reader) (domain.TextStats, error) {
	in, err := s.prepare(ctx, r, nil)
	if err != nil {
		return domain.TextStats{}, err
	}
	data, err := io.ReadAll(contextReader{ctx: ctx, r: in})
	if err != nil {
		if errors.Is(err, ctx.Err()) {
			return domain.TextStats{}, err
		}
		return domain.TextStats{}, fmt.Errorf("read input: %w", err)
	}
	return s.Inspect(string(data)), nil
}

// source resolves a random source from settings.
func (s *DecorationService) source(settings domain.RandomSettings) (driven.RandomSource, error) {
	if s.sources == nil {
		return globalSource{}, nil
	}
	rng, err := s.sources.Create(settings)
	if err != nil {
		return nil, fmt.Errorf("random source %q: %w", settings.Source, err)
	}
	return rng, nil
}

// baseCounter counts the non-mark runes read through it.
type baseCounter struct {
	io.RuneReader
	base int64
}

func (c *baseCounter) ReadRune() (rune, int, error) {
	r, size, err := c.RuneReader.ReadRune()
	if err == nil && !domain.IsMark(r) {
		c.base++
	}
	return r, size, err
}
