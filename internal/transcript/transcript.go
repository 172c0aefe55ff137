// Package transcript appends executed commands and their output to the
// session log file.
package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DefaultFile is the transcript file name used when none is configured.
const DefaultFile = "session.log"

// Writer receives one entry per executed step.
type Writer interface {
	Append(command, output string) error
}

// File is an append-only transcript on disk. The file is opened for each
// entry, created if absent, and never truncated.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile returns a transcript writing to path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Append writes "> {command}\n{output}\n\n".
func (f *File) Append(command, output string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create transcript directory: %w", err)
		}
	}
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600) //nolint:gosec // path from config
	if err != nil {
		return fmt.Errorf("failed to open transcript: %w", err)
	}
	defer file.Close() //nolint:errcheck // write error is reported below

	if _, err := fmt.Fprintf(file, "> %s\n%s\n\n", command, output); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}

// Discard drops every entry.
type Discard struct{}

// Append does nothing.
func (Discard) Append(string, string) error { return nil }
