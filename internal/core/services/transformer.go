package services

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
)

// StripTransformer returns a transformer that drops every mark.
// Transformers are stateful; use a fresh one per stream.
func StripTransformer() transform.Transformer {
	return runes.Remove(runes.Predicate(domain.IsMark))
}
