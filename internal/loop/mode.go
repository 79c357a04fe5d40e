package loop

import (
	"fmt"
	"io"

	"github.com/itsmostafa/rpncalc/internal/source"
)

// Mode represents where the loop reads commands from
type Mode string

const (
	// ModeInteractive reads from standard input with the exit sentinel
	ModeInteractive Mode = "interactive"
	// ModeFile reads a script file
	ModeFile Mode = "file"
)

// DetectMode picks the mode from positional arguments: none means
// interactive input, one names a script file, anything else is invalid.
func DetectMode(args []string) (Mode, error) {
	switch len(args) {
	case 0:
		return ModeInteractive, nil
	case 1:
		return ModeFile, nil
	default:
		return "", fmt.Errorf("invalid input: expected at most one script file, got %d arguments", len(args))
	}
}

// SourceFor builds the source matching mode. stdin backs interactive mode.
func SourceFor(mode Mode, args []string, stdin io.Reader) (source.Source, error) {
	switch mode {
	case ModeInteractive:
		return source.Stdin{Reader: stdin}, nil
	case ModeFile:
		if len(args) != 1 {
			return nil, fmt.Errorf("file mode requires one path, got %d", len(args))
		}
		return source.File{Path: args[0]}, nil
	default:
		return nil, fmt.Errorf("unknown mode: %q (valid options: interactive, file)", mode)
	}
}
