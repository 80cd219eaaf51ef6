package postprocessors

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driven"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}
	if len(r.builders) != 0 {
		t.Errorf("expected empty builders, got %d", len(r.builders))
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	r.Register("test", func(_ map[string]any) (driven.Stage, error) {
		return &mockStage{name: "test"}, nil
	})

	if !r.Has("test") {
		t.Error("expected 'test' to be registered")
	}
	if r.Has("other") {
		t.Error("expected 'other' to be unknown")
	}
}

func TestRegistry_Build_PassesConfig(t *testing.T) {
	r := NewRegistry()
	r.Register("test", func(cfg map[string]any) (driven.Stage, error) {
		suffix, _ := cfg["suffix"].(string)
		return &mockStage{name: "test", suffix: suffix}, nil
	})

	stage, err := r.Build("test", map[string]any{"suffix": "!"})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	out, err := stage.Apply(context.Background(), strings.NewReader("hi"))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got := readAll(t, out); got != "hi!" {
		t.Errorf("expected config to reach the stage, got %q", got)
	}
}

func TestRegistry_Build_Unknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Build("missing", nil)
	if err == nil {
		t.Fatal("expected error for unknown stage")
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("expected stage name in error, got %q", err.Error())
	}
}

func TestRegistry_Build_BuilderError(t *testing.T) {
	errBuild := errors.New("bad config")
	r := NewRegistry()
	r.Register("test", func(map[string]any) (driven.Stage, error) {
		return nil, errBuild
	})

	if _, err := r.Build("test", nil); !errors.Is(err, errBuild) {
		t.Errorf("expected builder error, got %v", err)
	}
	if _, err := r.Pipeline("test"); !errors.Is(err, errBuild) {
		t.Errorf("expected builder error from Pipeline, got %v", err)
	}
}

func TestRegistry_Pipeline_UsesConfiguredSettings(t *testing.T) {
	r := NewRegistry()
	r.Register("suffix", func(cfg map[string]any) (driven.Stage, error) {
		suffix, _ := cfg["suffix"].(string)
		return &mockStage{name: "suffix", suffix: suffix}, nil
	})
	r.Configure("suffix", map[string]any{"suffix": "?"})

	p, err := r.Pipeline("suffix", "suffix")
	if err != nil {
		t.Fatalf("Pipeline failed: %v", err)
	}
	out, err := p.Apply(context.Background(), strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got := readAll(t, out); got != "x??" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	want := []string{StageLower, StageStrip, StageTitle, StageUpper}
	if got := r.Names(); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRegisterDefaults_Stages(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	tests := []struct {
		stages []string
		input  string
		want   string
	}{
		{[]string{StageStrip}, "Z\u0300a\u0316l\u0489go", "Zalgo"},
		{[]string{StageUpper}, "zalgo", "ZALGO"},
		{[]string{StageLower}, "ZALGO", "zalgo"},
		{[]string{StageTitle}, "he who waits", "He Who Waits"},
		{[]string{StageStrip, StageUpper}, "z\u0300algo", "ZALGO"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.stages, "+"), func(t *testing.T) {
			p, err := r.Pipeline(tt.stages...)
			if err != nil {
				t.Fatalf("Pipeline failed: %v", err)
			}
			out, err := p.Apply(context.Background(), strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			if got := readAll(t, out); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRegisterDefaults_CaseLanguage(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	stage, err := r.Build(StageUpper, map[string]any{"language": "tr"})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	out, err := stage.Apply(context.Background(), strings.NewReader("i"))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got := readAll(t, out); got != "\u0130" {
		t.Errorf("expected Turkish dotted capital I, got %q", got)
	}

	if _, err := r.Build(StageUpper, map[string]any{"language": "not a tag!"}); err == nil {
		t.Error("expected error for invalid language tag")
	}
}
