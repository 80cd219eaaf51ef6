// Package textstage provides streaming text stages built on
// golang.org/x/text transformers.
package textstage

import (
	"context"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driven"
	"github.com/custodia-labs/zalgo-cli/internal/core/services"
)

// Ensure Stage implements the interface.
var _ driven.Stage = (*Stage)(nil)

// Stage wraps its input in a fresh transformer on every Apply.
type Stage struct {
	name           string
	newTransformer func() transform.Transformer
}

// New creates a stage from a transformer constructor.
func New(name string, newTransformer func() transform.Transformer) *Stage {
	return &Stage{name: name, newTransformer: newTransformer}
}

// Name returns the stage name.
func (s *Stage) Name() string {
	return s.name
}

// Apply wraps in with the stage's transformer.
func (s *Stage) Apply(_ context.Context, in io.Reader) (io.Reader, error) {
	return transform.NewReader(in, s.newTransformer()), nil
}

// Strip returns a stage that removes every mark, so that already
// decorated input is decorated afresh.
func Strip() *Stage {
	return New("strip", services.StripTransformer)
}

// CaseMode selects a case mapping.
type CaseMode uint8

// Case mappings.
const (
	CaseLower CaseMode = iota
	CaseUpper
	CaseTitle
)

// String returns the stage name of the mapping.
func (m CaseMode) String() string {
	switch m {
	case CaseUpper:
		return "upper"
	case CaseTitle:
		return "title"
	default:
		return "lower"
	}
}

type caseConfig struct {
	lang language.Tag
}

// Option configures a case stage.
type Option func(*caseConfig)

// WithLanguage applies language-specific case rules, e.g. Turkish dotted i.
func WithLanguage(tag language.Tag) Option {
	return func(c *caseConfig) {
		c.lang = tag
	}
}

// Case returns a stage applying a case mapping.
func Case(mode CaseMode, opts ...Option) *Stage {
	cfg := caseConfig{lang: language.Und}
	for _, opt := range opts {
		opt(&cfg)
	}

	return New(mode.String(), func() transform.Transformer {
		switch mode {
		case CaseUpper:
			return cases.Upper(cfg.lang)
		case CaseTitle:
			return cases.Title(cfg.lang)
		default:
			return cases.Lower(cfg.lang)
		}
	})
}
