// Package plaintext normalises plain text input of unknown encoding.
package plaintext

import (
	"context"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser decodes plain text. A leading byte order mark selects UTF-8,
// UTF-16LE or UTF-16BE and is dropped; without one the input is read as
// UTF-8 and invalid bytes become U+FFFD.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name returns the normaliser name.
func (n *Normaliser) Name() string {
	return "plaintext"
}

// Normalise wraps r in a streaming decoder.
func (n *Normaliser) Normalise(_ context.Context, r io.Reader) (io.Reader, error) {
	if r == nil {
		return nil, domain.ErrInvalidInput
	}
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return transform.NewReader(r, decoder), nil
}
