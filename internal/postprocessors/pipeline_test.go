package postprocessors

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

// mockStage appends a suffix to everything it reads.
type mockStage struct {
	name   string
	suffix string
	err    error
}

func (m *mockStage) Name() string {
	return m.name
}

func (m *mockStage) Apply(_ context.Context, in io.Reader) (io.Reader, error) {
	if m.err != nil {
		return nil, m.err
	}
	return io.MultiReader(in, strings.NewReader(m.suffix)), nil
}

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(data)
}

func TestNewPipeline(t *testing.T) {
	p := NewPipeline()
	if p == nil {
		t.Fatal("expected non-nil pipeline")
	}
	if p.Len() != 0 {
		t.Errorf("expected 0 stages, got %d", p.Len())
	}
}

func TestPipeline_Add(t *testing.T) {
	p := NewPipeline()
	p.Add(&mockStage{name: "test"})

	if p.Len() != 1 {
		t.Errorf("expected 1 stage, got %d", p.Len())
	}
}

func TestPipeline_Apply_NilInput(t *testing.T) {
	p := NewPipeline()

	_, err := p.Apply(context.Background(), nil)
	if err == nil {
		t.Error("expected error for nil input")
	}
}

func TestPipeline_Apply_EmptyPipeline(t *testing.T) {
	p := NewPipeline()

	out, err := p.Apply(context.Background(), strings.NewReader("text"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readAll(t, out); got != "text" {
		t.Errorf("expected input unchanged, got %q", got)
	}
}

func TestPipeline_Apply_Order(t *testing.T) {
	p := NewPipeline(
		&mockStage{name: "first", suffix: "1"},
		&mockStage{name: "second", suffix: "2"},
	)

	out, err := p.Apply(context.Background(), strings.NewReader("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readAll(t, out); got != "x12" {
		t.Errorf("expected stages in order, got %q", got)
	}

	names := p.Names()
	if len(names) != 2 || names[0] != "first" || names[1] != "second" {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestPipeline_Apply_StageError(t *testing.T) {
	errStage := errors.New("stage failed")
	p := NewPipeline(
		&mockStage{name: "ok"},
		&mockStage{name: "broken", err: errStage},
	)

	_, err := p.Apply(context.Background(), strings.NewReader("x"))
	if !errors.Is(err, errStage) {
		t.Fatalf("expected wrapped stage error, got %v", err)
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("expected stage name in error, got %q", err.Error())
	}
}

func TestPipeline_Apply_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPipeline(&mockStage{name: "first"})

	_, err := p.Apply(ctx, strings.NewReader("x"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
