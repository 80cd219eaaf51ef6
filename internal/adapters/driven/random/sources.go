package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driven"
)

// Global draws from the math/rand/v2 top-level functions. It is safe for
// concurrent use and cannot be seeded.
type Global struct{}

// IntN returns a uniform integer in [0, n).
func (Global) IntN(n int) int { return rand.IntN(n) }

// pcgIncrement is the second PCG state word used for seeded sources.
const pcgIncrement = 0xda3e39cb94b95bdb

// NewPCG returns a PCG-backed source producing the same sequence for the
// same seed.
func NewPCG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, pcgIncrement))
}

// NewChaCha8 returns a ChaCha8-backed source producing the same sequence
// for the same seed. The seed fills the first eight key bytes.
func NewChaCha8(seed uint64) *rand.Rand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return rand.New(rand.NewChaCha8(key))
}

// entropySeed returns a seed from the operating system.
func entropySeed() uint64 {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// cryptoSource is a rand.Source reading from crypto/rand.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// NewCrypto returns a source backed by the operating system's CSPRNG.
func NewCrypto() *rand.Rand {
	return rand.New(cryptoSource{})
}

// Ensure every source satisfies the port.
var (
	_ driven.RandomSource = Global{}
	_ driven.RandomSource = (*rand.Rand)(nil)
)
