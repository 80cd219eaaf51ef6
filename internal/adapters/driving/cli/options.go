package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
)

// decorationFlags are the flags shared by commands that decorate.
type decorationFlags struct {
	above     bool
	within    bool
	below     bool
	intensity string
	exact     string
	rng       string
	seed      uint64
	rate      int
	restrip   bool
	stages    []string
}

func (f *decorationFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVarP(&f.above, "above", "u", false, "add marks above")
	flags.BoolVarP(&f.within, "within", "m", false, "add marks through the middle")
	flags.BoolVarP(&f.below, "below", "d", false, "add marks below")
	flags.StringVarP(&f.intensity, "intensity", "s", "", "tiny, normal, large or random (aliases mini, maxi)")
	flags.StringVar(&f.exact, "exact", "", "exact marks per character as above,within,below")
	flags.StringVar(&f.rng, "rng", "", "random source: default, pcg, chacha8 or crypto")
	flags.Uint64Var(&f.seed, "seed", 0, "seed for a reproducible random source")
	flags.IntVar(&f.rate, "rate", 0, "output runes per second (0 = unthrottled)")
	flags.BoolVar(&f.restrip, "restrip", false, "strip existing marks before decorating")
	flags.StringSliceVar(&f.stages, "stage", nil, "input stage to apply before decorating (repeatable)")
}

// resolvedOptions is what a decorating command runs with.
type resolvedOptions struct {
	options domain.Options
	rate    int
	stages  []string
}

// resolve layers explicitly set flags over the persisted settings.
func (f *decorationFlags) resolve(cmd *cobra.Command) (resolvedOptions, error) {
	settings := domain.DefaultSettings()
	if settingsService != nil {
		s, err := settingsService.Get()
		if err != nil {
			return resolvedOptions{}, fmt.Errorf("failed to load settings: %w", err)
		}
		settings = s
	}

	res := resolvedOptions{
		options: settings.Options(),
		rate:    settings.Output.Rate,
	}

	if kind := f.kind(); !kind.IsEmpty() {
		res.options.Kind = kind
	}

	flags := cmd.Flags()
	switch {
	case flags.Changed("exact"):
		intensity, err := domain.ParseIntensity("exact:" + f.exact)
		if err != nil {
			return resolvedOptions{}, err
		}
		res.options.Intensity = intensity
	case flags.Changed("intensity"):
		intensity, err := domain.ParseIntensity(f.intensity)
		if err != nil {
			return resolvedOptions{}, err
		}
		res.options.Intensity = intensity
	}

	if flags.Changed("rng") {
		source, err := domain.ParseRandomSourceName(f.rng)
		if err != nil {
			return resolvedOptions{}, err
		}
		res.options.Random.Source = source
	}
	if flags.Changed("seed") {
		res.options.Random.Seed = f.seed
		res.options.Random.HasSeed = true
	}

	if flags.Changed("rate") {
		if f.rate < 0 {
			return resolvedOptions{}, fmt.Errorf("%w: --rate must not be negative", domain.ErrInvalidInput)
		}
		res.rate = f.rate
	}

	if f.restrip {
		res.stages = append(res.stages, "strip")
	}
	res.stages = append(res.stages, f.stages...)

	return res, nil
}

// kind is the union of the class flags, empty when none is set.
func (f *decorationFlags) kind() domain.Kind {
	kind := domain.KindNone
	if f.above {
		kind |= domain.KindAbove
	}
	if f.within {
		kind |= domain.KindWithin
	}
	if f.below {
		kind |= domain.KindBelow
	}
	return kind
}
