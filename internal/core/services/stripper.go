package services

import (
	"errors"
	"io"
	"iter"

	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
)

// Stripper is the stripping filter: it yields only the input runes that
// are not marks.
type Stripper struct {
	input io.RuneReader
	done  bool
	err   error
	enc   runeEncoder
}

// Ensure Stripper satisfies the stream interfaces.
var (
	_ io.Reader     = (*Stripper)(nil)
	_ io.RuneReader = (*Stripper)(nil)
)

// NewStripper creates a filter pulling from input.
func NewStripper(input io.RuneReader) *Stripper {
	return &Stripper{input: input}
}

// Next returns the next non-mark rune.
func (s *Stripper) Next() (rune, bool) {
	for !s.done {
		r, _, err := s.input.ReadRune()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.err = err
			}
			s.done = true
			break
		}
		if !domain.IsMark(r) {
			return r, true
		}
	}
	return 0, false
}

// ReadRune implements io.RuneReader.
func (s *Stripper) ReadRune() (rune, int, error) {
	r, ok := s.Next()
	if !ok {
		return 0, 0, s.endErr()
	}
	return r, runeSize(r), nil
}

// Read implements io.Reader.
func (s *Stripper) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, _ := s.enc.read(p, s.Next)
	if n == 0 {
		return 0, s.endErr()
	}
	return n, nil
}

// All returns the remaining runes as an iterator.
func (s *Stripper) All() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for {
			r, ok := s.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}

// Err returns the first non-EOF error returned by the input, if any.
func (s *Stripper) Err() error {
	return s.err
}

func (s *Stripper) endErr() error {
	if s.err != nil {
		return s.err
	}
	return io.EOF
}
