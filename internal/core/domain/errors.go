package domain

import "errors"

// Domain errors represent input that cannot be turned into a decoration request.
// The decoration engine itself never fails; these come from parsing and wiring.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownIntensity indicates an intensity name that is not recognised.
	ErrUnknownIntensity = errors.New("unknown intensity")

	// ErrUnknownKind indicates a mark class name that is not recognised.
	ErrUnknownKind = errors.New("unknown mark kind")

	// ErrUnknownRandomSource indicates a random source name that is not recognised.
	ErrUnknownRandomSource = errors.New("unknown random source")

	// ErrNotConfigured indicates a required service was not wired in.
	ErrNotConfigured = errors.New("not configured")
)
