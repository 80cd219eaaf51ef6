// Package logger provides levelled stderr logging for the zalgo CLI.
//
// Debug, Info and Section only print in verbose mode (--verbose). Warn
// prints unless quiet mode (--quiet) is set. The decoration engine never
// logs; services and adapters do.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level is the minimum severity that gets printed.
type Level int

// Levels in increasing severity.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	// LevelQuiet suppresses every message.
	LevelQuiet
)

var (
	mu     sync.Mutex
	level  = LevelWarn
	output io.Writer = os.Stderr
)

// SetVerbose switches between debug output and the default warn level.
func SetVerbose(v bool) {
	if v {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelWarn)
}

// SetQuiet suppresses all output, or restores the default warn level.
func SetQuiet(q bool) {
	if q {
		SetLevel(LevelQuiet)
		return
	}
	SetLevel(LevelWarn)
}

// SetLevel sets the minimum printed level.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// IsVerbose returns true if debug messages are printed.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return level <= LevelDebug
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Reset restores the default level and output.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	level = LevelWarn
	output = os.Stderr
}

func logf(l Level, prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l < level {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Debug prints a message in verbose mode.
func Debug(format string, args ...any) {
	logf(LevelDebug, "[DEBUG] ", format, args...)
}

// Info prints an informational message in verbose mode.
func Info(format string, args ...any) {
	logf(LevelInfo, "[INFO] ", format, args...)
}

// Warn prints a warning unless quiet.
func Warn(format string, args ...any) {
	logf(LevelWarn, "[WARN] ", format, args...)
}

// Section prints a section header in verbose mode.
func Section(name string) {
	logf(LevelDebug, "\n", "=== %s ===", name)
}
