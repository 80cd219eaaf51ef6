// Package random provides the random sources the decoration engine draws from.
//
// Sources:
//   - default: the process-wide math/rand/v2 generator
//   - pcg: PCG, reproducible when seeded
//   - chacha8: ChaCha8, reproducible when seeded
//   - crypto: backed by crypto/rand, never seedable
package random
