// Package stream provides the byte-stream plumbing around the decoration
// engine: a rune-rate throttle for output and an output file that only
// replaces its target once writing has succeeded.
package stream
