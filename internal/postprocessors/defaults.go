package postprocessors

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driven"
	"github.com/custodia-labs/zalgo-cli/internal/postprocessors/textstage"
)

// Built-in stage names.
const (
	StageStrip = "strip"
	StageLower = "lower"
	StageUpper = "upper"
	StageTitle = "title"
)

// RegisterDefaults registers all built-in stages with the registry.
// Call this during application initialisation to enable standard stages.
func RegisterDefaults(r *Registry) {
	r.Register(StageStrip, func(map[string]any) (driven.Stage, error) {
		return textstage.Strip(), nil
	})
	r.Register(StageLower, buildCase(textstage.CaseLower))
	r.Register(StageUpper, buildCase(textstage.CaseUpper))
	r.Register(StageTitle, buildCase(textstage.CaseTitle))
}

// buildCase returns a builder for a case mapping stage.
// Supported config keys:
//   - language (string): BCP 47 tag for language-specific rules (default: und)
func buildCase(mode textstage.CaseMode) BuilderFunc {
	return func(cfg map[string]any) (driven.Stage, error) {
		var opts []textstage.Option

		if tag, ok := cfg["language"].(string); ok && tag != "" {
			lang, err := language.Parse(tag)
			if err != nil {
				return nil, fmt.Errorf("language %q: %w", tag, err)
			}
			opts = append(opts, textstage.WithLanguage(lang))
		}

		return textstage.Case(mode, opts...), nil
	}
}
