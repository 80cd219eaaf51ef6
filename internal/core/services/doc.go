// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The decoration engine (Decorator) and the stripping filter (Stripper)
// live here too. Both are lazy pull iterators over an io.RuneReader and
// perform no I/O of their own beyond reading that input.
//
// Services are pure Go with no CGO or external dependencies.
package services
