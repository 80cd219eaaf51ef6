package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
)

// StreamRequest describes one streaming decoration run.
type StreamRequest struct {
	// Options selects classes, intensity and random source.
	Options domain.Options
	// Stages names pre-decoration stages, run in order (e.g. "strip").
	Stages []string
}

// StreamResult reports what a streaming run produced.
type StreamResult struct {
	// BaseRunes is the number of non-mark input runes.
	BaseRunes int64
	// Written is the number of bytes written to the sink.
	Written int64
}

// DecorationService decorates and strips text.
type DecorationService interface {
	// Decorate returns text decorated according to opts.
	Decorate(ctx context.Context, text string, opts domain.Options) (string, error)

	// Stream decorates r into w without holding the output in memory.
	// It stops with ctx.Err() when ctx is cancelled.
	Stream(ctx context.Context, w io.Writer, r io.Reader, req StreamRequest) (StreamResult, error)

	// Strip removes every mark from text.
	Strip(text string) string

	// StripStream removes every mark while copying r to w.
	StripStream(ctx context.Context, w io.Writer, r io.Reader) (int64, error)

	// IsMark reports whether r is a decoration mark.
	IsMark(r rune) bool

	// Marks returns the alphabet of the selected classes in table order.
	Marks(kind domain.Kind) []rune

	// Inspect counts runes, marks and graphemes of text.
	Inspect(text string) domain.TextStats

	// InspectStream decodes r like Stream does and inspects the result.
	InspectStream(ctx context.Context, r io.Reader) (domain.TextStats, error)
}
