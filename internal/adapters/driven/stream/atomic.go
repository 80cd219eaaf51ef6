package stream

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrFileClosed is returned when writing to a committed or aborted file.
var ErrFileClosed = errors.New("output file already closed")

// AtomicFile writes to a temporary file next to its target and renames it
// into place on Commit. The target is untouched until then.
type AtomicFile struct {
	path   string
	tmp    *os.File
	closed bool
}

// CreateAtomic starts writing a replacement for path.
func CreateAtomic(path string) (*AtomicFile, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmpPath := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create temp file for %s: %w", path, err)
	}
	return &AtomicFile{path: path, tmp: f}, nil
}

// Write implements io.Writer.
func (a *AtomicFile) Write(p []byte) (int, error) {
	if a.closed {
		return 0, ErrFileClosed
	}
	return a.tmp.Write(p)
}

// Name returns the target path.
func (a *AtomicFile) Name() string {
	return a.path
}

// Commit flushes the temporary file and renames it over the target.
func (a *AtomicFile) Commit() error {
	if a.closed {
		return ErrFileClosed
	}
	a.closed = true

	if err := a.tmp.Sync(); err != nil {
		_ = a.tmp.Close()
		_ = os.Remove(a.tmp.Name())
		return fmt.Errorf("sync %s: %w", a.path, err)
	}
	if err := a.tmp.Close(); err != nil {
		_ = os.Remove(a.tmp.Name())
		return fmt.Errorf("close %s: %w", a.path, err)
	}
	if err := os.Rename(a.tmp.Name(), a.path); err != nil {
		_ = os.Remove(a.tmp.Name())
		return fmt.Errorf("replace %s: %w", a.path, err)
	}
	return nil
}

// Abort discards the temporary file. It is a no-op after Commit, so it
// can be deferred.
func (a *AtomicFile) Abort() error {
	if a.closed {
		return nil
	}
	a.closed = true
	_ = a.tmp.Close()
	return os.Remove(a.tmp.Name())
}
