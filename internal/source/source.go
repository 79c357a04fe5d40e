// Package source provides the inputs the command loop reads lines from.
package source

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Source is a named stream of command lines.
type Source interface {
	// Name returns a human-readable name for this source (e.g. a file path).
	Name() string

	// Open returns a fresh reader positioned at the first line. The caller
	// closes it.
	Open() (io.ReadCloser, error)

	// Interactive reports whether the source is typed by a user, which
	// enables the banner, the prompt and the "exit" sentinel.
	Interactive() bool
}

// File reads commands from a script on disk. Every Open rereads the file.
type File struct {
	Path string
}

func (f File) Name() string { return f.Path }

func (f File) Open() (io.ReadCloser, error) {
	r, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("unable to open file %s: %w", f.Path, err)
	}
	return r, nil
}

func (File) Interactive() bool { return false }

// Stdin reads commands typed at the terminal or piped in.
type Stdin struct {
	Reader io.Reader
}

func (Stdin) Name() string { return "<stdin>" }

func (s Stdin) Open() (io.ReadCloser, error) {
	r := s.Reader
	if r == nil {
		r = os.Stdin
	}
	return io.NopCloser(r), nil
}

func (Stdin) Interactive() bool { return true }

// Lines treats each element as one command line.
type Lines []string

func (Lines) Name() string { return "<args>" }

func (l Lines) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(strings.Join(l, "\n"))), nil
}

func (Lines) Interactive() bool { return false }
