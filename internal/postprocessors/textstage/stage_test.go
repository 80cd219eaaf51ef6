package textstage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func apply(t *testing.T, s *Stage, input string) string {
	t.Helper()
	r, err := s.Apply(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestStrip(t *testing.T) {
	s := Strip()
	assert.Equal(t, "strip", s.Name())
	assert.Equal(t, "Zalgo", apply(t, s, "Z\u0300a\u0316l\u0489go"))
}

func TestStage_FreshTransformerPerApply(t *testing.T) {
	s := Case(CaseTitle)
	assert.Equal(t, "Hello World", apply(t, s, "hello world"))
	assert.Equal(t, "Again", apply(t, s, "again"))
}

func TestCase(t *testing.T) {
	assert.Equal(t, "upper", Case(CaseUpper).Name())
	assert.Equal(t, "ZALGO", apply(t, Case(CaseUpper), "zalgo"))
	assert.Equal(t, "zalgo", apply(t, Case(CaseLower), "ZALGO"))
	assert.Equal(t, "\u0131", apply(t, Case(CaseLower, WithLanguage(language.Turkish)), "I"))
}

func TestCaseMode_String(t *testing.T) {
	assert.Equal(t, "lower", CaseLower.String())
	assert.Equal(t, "upper", CaseUpper.String())
	assert.Equal(t, "title", CaseTitle.String())
}
