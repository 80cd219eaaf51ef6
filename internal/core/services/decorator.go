package services

import (
	"errors"
	"io"
	"iter"
	"math"
	"unicode/utf8"

	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driven"
)

// decoratorState tracks where the engine is within the current burst.
type decoratorState uint8

const (
	// stateIdle means the next pull reads a new input rune.
	stateIdle decoratorState = iota
	stateAbove
	stateWithin
	stateBelow
	// stateDone is terminal.
	stateDone
)

// Decorator is the decoration engine. Each base rune read from the input is
// emitted unchanged, followed by a burst of marks: first the above marks,
// then within, then below, as many of each as the intensity draws and the
// kind allows. Marks already present in the input are emitted as they are
// and never receive a burst of their own.
//
// A Decorator is lazy: it reads one input rune at a time and only when the
// previous burst is exhausted. It is not safe for concurrent use.
type Decorator struct {
	rng       driven.RandomSource
	input     io.RuneReader
	kind      domain.Kind
	intensity domain.Intensity

	state     decoratorState
	remaining [3]uint
	err       error
	enc       runeEncoder
}

// Ensure Decorator satisfies the stream interfaces.
var (
	_ io.Reader     = (*Decorator)(nil)
	_ io.RuneReader = (*Decorator)(nil)
)

// NewDecorator creates an engine pulling from input.
// The engine borrows rng for its whole lifetime.
func NewDecorator(
	rng driven.RandomSource,
	input io.RuneReader,
	kind domain.Kind,
	intensity domain.Intensity,
) *Decorator {
	return &Decorator{
		rng:       rng,
		input:     input,
		kind:      kind,
		intensity: intensity,
	}
}

// Next returns the next output rune. The boolean is false once the input is
// exhausted and the last burst has been emitted; it stays false afterwards.
func (d *Decorator) Next() (rune, bool) {
	for {
		switch d.state {
		case stateDone:
			return 0, false

		case stateIdle:
			r, _, err := d.input.ReadRune()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					d.err = err
				}
				d.state = stateDone
				return 0, false
			}
			if domain.IsMark(r) {
				return r, true
			}
			d.remaining = d.plan()
			d.state = stateAbove
			return r, true

		default:
			class := domain.MarkClass(d.state - stateAbove)
			if d.remaining[class] > 0 {
				d.remaining[class]--
				return d.pick(class), true
			}
			if d.state == stateBelow {
				d.state = stateIdle
			} else {
				d.state++
			}
		}
	}
}

// plan returns the burst sizes for one base rune, indexed by MarkClass.
// Preset counts are drawn for every class and masked afterwards, so the
// number of draws per base rune depends only on the intensity.
func (d *Decorator) plan() [3]uint {
	counts, ok := d.intensity.Exact()
	if !ok {
		level := d.intensity.Level()
		if level == domain.LevelRandom {
			level = domain.Presets[d.rng.IntN(len(domain.Presets))]
		}
		rules, _ := level.Rules()
		counts = domain.Counts{
			Above:  rules[domain.ClassAbove].Count(d.rng.IntN(rules[domain.ClassAbove].Bound)),
			Within: rules[domain.ClassWithin].Count(d.rng.IntN(rules[domain.ClassWithin].Bound)),
			Below:  rules[domain.ClassBelow].Count(d.rng.IntN(rules[domain.ClassBelow].Bound)),
		}
	}
	counts = counts.Masked(d.kind)
	return [3]uint{counts.Above, counts.Within, counts.Below}
}

// pick draws one mark of class c, uniformly and with replacement.
func (d *Decorator) pick(c domain.MarkClass) rune {
	return c.At(d.rng.IntN(c.Len()))
}

// ReadRune implements io.RuneReader. It returns io.EOF at the end of the
// output, or the input's read error if reading failed.
// Do not mix ReadRune with Read on the same Decorator.
func (d *Decorator) ReadRune() (rune, int, error) {
	r, ok := d.Next()
	if !ok {
		return 0, 0, d.endErr()
	}
	return r, runeSize(r), nil
}

// Read implements io.Reader over the UTF-8 encoding of the output.
func (d *Decorator) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, _ := d.enc.read(p, d.Next)
	if n == 0 {
		return 0, d.endErr()
	}
	return n, nil
}

// All returns the remaining output as an iterator.
func (d *Decorator) All() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for {
			r, ok := d.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}

// SizeHint returns bounds on the number of runes still to be emitted.
// Marks left in the current burst are always counted. Unread input only
// counts when the input reports its unread byte length with a Len method,
// as strings.Reader and bytes.Reader do; each unread rune takes at most
// utf8.UTFMax bytes. The hint is exact once the input is fully read.
func (d *Decorator) SizeHint() domain.SizeHint {
	if d.state == stateDone {
		return domain.SizeHint{Bounded: true}
	}

	pending := 0
	for _, n := range d.remaining {
		pending = addCapped(pending, n)
	}

	sized, ok := d.input.(interface{ Len() int })
	if !ok {
		return domain.SizeHint{Lower: pending}
	}
	unread := sized.Len()
	if unread <= 0 {
		return domain.SizeHint{Lower: pending, Upper: pending, Bounded: true}
	}
	return domain.SizeHint{Lower: addCapped(pending, uint((unread+utf8.UTFMax-1)/utf8.UTFMax))}
}

// addCapped returns a+b, saturating at math.MaxInt.
func addCapped(a int, b uint) int {
	if b > uint(math.MaxInt-a) {
		return math.MaxInt
	}
	return a + int(b)
}

// Err returns the first non-EOF error returned by the input, if any.
func (d *Decorator) Err() error {
	return d.err
}

func (d *Decorator) endErr() error {
	if d.err != nil {
		return d.err
	}
	return io.EOF
}
