// Package mcp provides an MCP (Model Context Protocol) server adapter for zalgo.
// It lets AI assistants decorate, strip and inspect text.
package mcp

import "errors"

// ErrMissingDecorationService is returned when the decoration service is not provided.
var ErrMissingDecorationService = errors.New("mcp: decoration service is required")
