package tui

import "errors"

// ErrMissingDecorationService is returned when the decoration service is not provided.
var ErrMissingDecorationService = errors.New("tui: decoration service is required")
