// Package domain defines the core entities for zalgo.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Above, Within, Below: the fixed mark tables
//   - MarkIter: a double-ended enumerator over every mark
//   - Kind: which mark classes take part in decoration
//   - Intensity: how many marks each class emits per base rune
//   - Settings: persisted defaults for the command line
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
