package domain

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// Level identifies how an Intensity chooses its per-rune mark counts.
type Level uint8

// Intensity levels.
const (
	// LevelTiny draws a small number of marks per class.
	LevelTiny Level = iota
	// LevelNormal draws a medium number, never zero above and below.
	LevelNormal
	// LevelLarge draws many marks with a non-zero floor in every class.
	LevelLarge
	// LevelRandom picks one of the three presets for every base rune.
	LevelRandom
	// LevelExact uses caller supplied counts verbatim.
	LevelExact
)

// Presets lists the levels LevelRandom chooses between, in draw order.
var Presets = [...]Level{LevelTiny, LevelNormal, LevelLarge}

// CountRule turns a uniform draw from [0, Bound) into a mark count:
// Floor + draw/Divisor.
type CountRule struct {
	Bound   int
	Divisor int
	Floor   int
}

// Count applies the rule to a draw taken from [0, Bound).
func (r CountRule) Count(draw int) uint {
	return uint(r.Floor + draw/r.Divisor)
}

// presetRules holds the above, within and below rule of each preset.
var presetRules = map[Level][3]CountRule{
	LevelTiny:   {{Bound: 8, Divisor: 1}, {Bound: 2, Divisor: 1}, {Bound: 8, Divisor: 1}},
	LevelNormal: {{Bound: 16, Divisor: 2, Floor: 1}, {Bound: 6, Divisor: 2}, {Bound: 16, Divisor: 2, Floor: 1}},
	LevelLarge:  {{Bound: 64, Divisor: 4, Floor: 3}, {Bound: 16, Divisor: 4, Floor: 1}, {Bound: 64, Divisor: 4, Floor: 3}},
}

// Rules returns the per-class count rules of a preset level, in table order.
// The boolean is false for LevelRandom and LevelExact.
func (l Level) Rules() ([3]CountRule, bool) {
	r, ok := presetRules[l]
	return r, ok
}

// IsPreset reports whether l is one of Tiny, Normal or Large.
func (l Level) IsPreset() bool {
	_, ok := presetRules[l]
	return ok
}

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelTiny:
		return "tiny"
	case LevelNormal:
		return "normal"
	case LevelLarge:
		return "large"
	case LevelRandom:
		return "random"
	case LevelExact:
		return "exact"
	default:
		return fmt.Sprintf("Level(%d)", uint8(l))
	}
}

// Counts is the number of marks to emit per class for one base rune.
type Counts struct {
	Above  uint `json:"above"`
	Within uint `json:"within"`
	Below  uint `json:"below"`
}

// Get returns the count for one class.
func (c Counts) Get(class MarkClass) uint {
	switch class {
	case ClassAbove:
		return c.Above
	case ClassWithin:
		return c.Within
	case ClassBelow:
		return c.Below
	default:
		return 0
	}
}

// Masked zeroes the counts of classes disabled in k.
func (c Counts) Masked(k Kind) Counts {
	if !k.Has(ClassAbove) {
		c.Above = 0
	}
	if !k.Has(ClassWithin) {
		c.Within = 0
	}
	if !k.Has(ClassBelow) {
		c.Below = 0
	}
	return c
}

// Total returns the sum of all three counts. It wraps on overflow.
func (c Counts) Total() uint {
	return c.Above + c.Within + c.Below
}

// Intensity is the emission policy of a decoration run.
// The zero value is the tiny preset.
type Intensity struct {
	level Level
	exact Counts
}

// Preset intensities.
var (
	IntensityTiny   = Intensity{level: LevelTiny}
	IntensityNormal = Intensity{level: LevelNormal}
	IntensityLarge  = Intensity{level: LevelLarge}
	IntensityRandom = Intensity{level: LevelRandom}
)

// ExactIntensity returns a policy that emits the given counts for every base rune.
func ExactIntensity(above, within, below uint) Intensity {
	return Intensity{
		level: LevelExact,
		exact: Counts{Above: above, Within: within, Below: below},
	}
}

// Level returns the policy variant.
func (i Intensity) Level() Level {
	return i.level
}

// Exact returns the fixed counts of an exact policy.
// The boolean is false for every other level.
func (i Intensity) Exact() (Counts, bool) {
	if i.level != LevelExact {
		return Counts{}, false
	}
	return i.exact, true
}

// String returns a form accepted by ParseIntensity.
func (i Intensity) String() string {
	if i.level == LevelExact {
		return fmt.Sprintf("exact:%d,%d,%d", i.exact.Above, i.exact.Within, i.exact.Below)
	}
	return i.level.String()
}

// MaxInteractiveCount is the largest exact count per class accepted by
// front ends that hold the whole decorated text in memory.
const MaxInteractiveCount = 1024

// CheckLimit returns ErrInvalidInput when an exact count exceeds limit.
// Presets always pass.
func (i Intensity) CheckLimit(limit uint) error {
	c, ok := i.Exact()
	if !ok {
		return nil
	}
	if c.Above > limit || c.Within > limit || c.Below > limit {
		return fmt.Errorf("%w: intensity %s exceeds %d marks per class", ErrInvalidInput, i, limit)
	}
	return nil
}

// SizeHint describes how many runes a decoration run can produce.
type SizeHint struct {
	// Lower is the minimum output length.
	Lower int
	// Upper is the maximum output length; only meaningful when Bounded.
	Upper int
	// Bounded is true when the output length is known exactly.
	Bounded bool
}

// SizeHint returns the output length bounds for n base runes decorated with
// the classes in k. The bound is exact for exact policies (and for an empty
// selector); for random presets, and for exact lengths that overflow an int,
// only the lower bound n is known.
func (i Intensity) SizeHint(k Kind, n int) SizeHint {
	if k.IsEmpty() {
		return SizeHint{Lower: n, Upper: n, Bounded: true}
	}
	if c, ok := i.Exact(); ok {
		if total, ok := exactLen(c.Masked(k), n); ok {
			return SizeHint{Lower: total, Upper: total, Bounded: true}
		}
	}
	return SizeHint{Lower: n}
}

// exactLen returns n*(1+c.Total()), or false if that does not fit in an int.
func exactLen(c Counts, n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	per := uint(1)
	for _, v := range [...]uint{c.Above, c.Within, c.Below} {
		var carry uint
		per, carry = bits.Add(per, v, 0)
		if carry != 0 {
			return 0, false
		}
	}
	hi, lo := bits.Mul(per, uint(n))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}

// ParseIntensity parses an intensity name.
//
// Accepted forms are tiny (mini), normal, large (maxi), random, and an exact
// triple written as "exact:A,W,B", "custom:A,W,B" or just "A,W,B".
func ParseIntensity(s string) (Intensity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "tiny", "mini", "small":
		return IntensityTiny, nil
	case "normal", "medium":
		return IntensityNormal, nil
	case "large", "maxi", "max":
		return IntensityLarge, nil
	case "random", "randomized":
		return IntensityRandom, nil
	}

	triple := name
	for _, prefix := range []string{"exact:", "custom:"} {
		triple = strings.TrimPrefix(triple, prefix)
	}
	parts := strings.Split(triple, ",")
	if len(parts) != 3 {
		return Intensity{}, fmt.Errorf("%w: %q", ErrUnknownIntensity, s)
	}

	var counts [3]uint
	for idx, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return Intensity{}, fmt.Errorf("%w: %q: count %d: %w", ErrUnknownIntensity, s, idx+1, err)
		}
		counts[idx] = uint(v)
	}
	return ExactIntensity(counts[0], counts[1], counts[2]), nil
}
