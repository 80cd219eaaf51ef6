package domain

import "fmt"

const unknownDescription = "Unknown"

// RandomSourceName identifies a random source implementation.
type RandomSourceName string

// Available random sources.
const (
	// RandomDefault uses the process-wide generator; runs are not reproducible.
	RandomDefault RandomSourceName = "default"

	// RandomPCG uses a seeded PCG generator.
	RandomPCG RandomSourceName = "pcg"

	// RandomChaCha8 uses a seeded ChaCha8 generator.
	RandomChaCha8 RandomSourceName = "chacha8"

	// RandomCrypto draws every value from the operating system's entropy source.
	RandomCrypto RandomSourceName = "crypto"
)

// RandomSourceNames lists every known source, in display order.
var RandomSourceNames = []RandomSourceName{RandomDefault, RandomPCG, RandomChaCha8, RandomCrypto}

// IsValid returns true if the source name is recognised.
func (n RandomSourceName) IsValid() bool {
	switch n {
	case RandomDefault, RandomPCG, RandomChaCha8, RandomCrypto:
		return true
	default:
		return false
	}
}

// IsSeedable returns true if the source produces reproducible output from a seed.
func (n RandomSourceName) IsSeedable() bool {
	return n == RandomPCG || n == RandomChaCha8
}

// String returns the string representation.
func (n RandomSourceName) String() string {
	return string(n)
}

// Description returns a human-readable description of the source.
func (n RandomSourceName) Description() string {
	switch n {
	case RandomDefault:
		return "Process default (fast, not reproducible)"
	case RandomPCG:
		return "PCG (seeded, reproducible)"
	case RandomChaCha8:
		return "ChaCha8 (seeded, reproducible)"
	case RandomCrypto:
		return "Crypto (system entropy)"
	default:
		return unknownDescription
	}
}

// ParseRandomSourceName validates a source name.
func ParseRandomSourceName(s string) (RandomSourceName, error) {
	n := RandomSourceName(s)
	if !n.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRandomSource, s)
	}
	return n, nil
}

// RandomSettings selects the random source used for decoration.
type RandomSettings struct {
	Source RandomSourceName
	// Seed is only used by seedable sources, and only when HasSeed is set.
	Seed    uint64
	HasSeed bool
}

// DecorationSettings holds the default emission policy and class selector.
type DecorationSettings struct {
	Kind      Kind
	Intensity Intensity
}

// OutputSettings controls how decorated text is written.
type OutputSettings struct {
	// Rate limits output to this many runes per second. Zero disables throttling.
	Rate int
}

// Settings holds the persisted command line defaults.
type Settings struct {
	Decoration DecorationSettings
	Random     RandomSettings
	Output     OutputSettings
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Decoration: DecorationSettings{
			Kind:      DefaultKind,
			Intensity: IntensityTiny,
		},
		Random: RandomSettings{
			Source: RandomDefault,
		},
	}
}

// Options is a fully resolved decoration request.
type Options struct {
	Kind      Kind
	Intensity Intensity
	Random    RandomSettings
}

// Options converts settings into a decoration request.
func (s Settings) Options() Options {
	return Options{
		Kind:      s.Decoration.Kind,
		Intensity: s.Decoration.Intensity,
		Random:    s.Random,
	}
}
