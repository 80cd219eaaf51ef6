package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntensity_ZeroValueIsTiny(t *testing.T) {
	var i Intensity
	assert.Equal(t, LevelTiny, i.Level())
	assert.Equal(t, IntensityTiny, i)
}

func TestIntensity_Exact(t *testing.T) {
	i := ExactIntensity(1, 2, 3)

	c, ok := i.Exact()
	require.True(t, ok)
	assert.Equal(t, Counts{Above: 1, Within: 2, Below: 3}, c)
	assert.Equal(t, LevelExact, i.Level())

	_, ok = IntensityLarge.Exact()
	assert.False(t, ok)
}

func TestLevel_Rules(t *testing.T) {
	for _, l := range Presets {
		rules, ok := l.Rules()
		require.True(t, ok, l.String())
		for _, r := range rules {
			assert.Positive(t, r.Bound)
			assert.Positive(t, r.Divisor)
		}
	}

	_, ok := LevelRandom.Rules()
	assert.False(t, ok)
	_, ok = LevelExact.Rules()
	assert.False(t, ok)
}

func TestLevel_PresetsAreMonotonic(t *testing.T) {
	maxOf := func(l Level) uint {
		rules, _ := l.Rules()
		var total uint
		for _, r := range rules {
			total += r.Count(r.Bound - 1)
		}
		return total
	}
	minOf := func(l Level) uint {
		rules, _ := l.Rules()
		var total uint
		for _, r := range rules {
			total += r.Count(0)
		}
		return total
	}

	assert.Less(t, maxOf(LevelTiny), maxOf(LevelNormal))
	assert.Less(t, maxOf(LevelNormal), maxOf(LevelLarge))
	assert.Zero(t, minOf(LevelTiny))
	assert.Equal(t, uint(2), minOf(LevelNormal))
	assert.Equal(t, uint(7), minOf(LevelLarge))
}

func TestCountRule_Count(t *testing.T) {
	r := CountRule{Bound: 64, Divisor: 4, Floor: 3}
	assert.Equal(t, uint(3), r.Count(0))
	assert.Equal(t, uint(3), r.Count(3))
	assert.Equal(t, uint(4), r.Count(4))
	assert.Equal(t, uint(18), r.Count(63))
}

func TestCounts_Masked(t *testing.T) {
	c := Counts{Above: 4, Within: 5, Below: 6}

	assert.Equal(t, Counts{}, c.Masked(KindNone))
	assert.Equal(t, c, c.Masked(KindAll))
	assert.Equal(t, Counts{Within: 5}, c.Masked(KindWithin))
	assert.Equal(t, uint(10), c.Masked(KindAbove|KindBelow).Total())
	assert.Equal(t, uint(5), c.Get(ClassWithin))
}

func TestIntensity_SizeHint(t *testing.T) {
	tests := []struct {
		name      string
		intensity Intensity
		kind      Kind
		n         int
		want      SizeHint
	}{
		{"exact all classes", ExactIntensity(1, 2, 3), KindAll, 4, SizeHint{Lower: 28, Upper: 28, Bounded: true}},
		{"exact masked", ExactIntensity(1, 2, 3), KindBelow, 4, SizeHint{Lower: 16, Upper: 16, Bounded: true}},
		{"exact zero", ExactIntensity(0, 0, 0), KindAll, 9, SizeHint{Lower: 9, Upper: 9, Bounded: true}},
		{"empty selector", IntensityLarge, KindNone, 5, SizeHint{Lower: 5, Upper: 5, Bounded: true}},
		{"random preset", IntensityRandom, KindAll, 5, SizeHint{Lower: 5}},
		{"tiny preset", IntensityTiny, KindAbove, 3, SizeHint{Lower: 3}},
		{"empty input", IntensityNormal, KindAll, 0, SizeHint{}},
		{"exact sum overflows", ExactIntensity(math.MaxUint, 0, 0), KindAll, 1, SizeHint{Lower: 1}},
		{"exact product overflows", ExactIntensity(1<<62, 1<<62, 1<<62), KindAll, 3, SizeHint{Lower: 3}},
		{"exact past max int", ExactIntensity(math.MaxInt, 0, 0), KindAll, 1, SizeHint{Lower: 1}},
		{"huge count masked out", ExactIntensity(math.MaxUint, 1, 0), KindWithin, 2, SizeHint{Lower: 4, Upper: 4, Bounded: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.intensity.SizeHint(tt.kind, tt.n))
		})
	}
}

func TestParseIntensity(t *testing.T) {
	tests := []struct {
		input string
		want  Intensity
	}{
		{"tiny", IntensityTiny},
		{"mini", IntensityTiny},
		{"Normal", IntensityNormal},
		{"large", IntensityLarge},
		{"maxi", IntensityLarge},
		{"random", IntensityRandom},
		{"exact:1,2,3", ExactIntensity(1, 2, 3)},
		{"custom:100,100,100", ExactIntensity(100, 100, 100)},
		{"0, 0, 0", ExactIntensity(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseIntensity(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIntensity_RoundTripsString(t *testing.T) {
	for _, i := range []Intensity{IntensityTiny, IntensityNormal, IntensityLarge, IntensityRandom, ExactIntensity(7, 0, 2)} {
		got, err := ParseIntensity(i.String())
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
}

func TestParseIntensity_Invalid(t *testing.T) {
	for _, input := range []string{"", "huge", "1,2", "exact:1,2,x", "-1,0,0", "1,2,3,4"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseIntensity(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnknownIntensity)
		})
	}
}

func TestIntensity_CheckLimit(t *testing.T) {
	tests := []struct {
		name      string
		intensity Intensity
		wantErr   bool
	}{
		{"preset", IntensityLarge, false},
		{"random", IntensityRandom, false},
		{"at limit", ExactIntensity(MaxInteractiveCount, MaxInteractiveCount, MaxInteractiveCount), false},
		{"above over limit", ExactIntensity(MaxInteractiveCount+1, 0, 0), true},
		{"within over limit", ExactIntensity(0, MaxInteractiveCount+1, 0), true},
		{"below far over limit", ExactIntensity(0, 0, math.MaxUint32), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.intensity.CheckLimit(MaxInteractiveCount)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}
