// Package loop drives the calculator: it reads command lines from a
// source, builds each command through the factory, executes it and
// reports failures without stopping.
package loop

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/itsmostafa/rpncalc/internal/calc"
)

// ExitCommand ends an interactive session.
const ExitCommand = "exit"

// Run executes every line of cfg.Source against a fresh execution context.
// Calculator errors and over-long lines are reported to cfg.Err and
// counted; only failing to read the source, or ctx being cancelled, returns
// an error. Cancellation is honoured even while a read is blocked.
func Run(ctx context.Context, cfg Config) (*Stats, error) {
	cfg = withDefaults(cfg)
	if cfg.Source == nil {
		return nil, fmt.Errorf("no command source configured")
	}

	r, err := cfg.Source.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	interactive := cfg.Source.Interactive()

	execCtx := calc.NewExecutionContext(cfg.Out)
	execCtx.Precision = cfg.Precision

	stats := &Stats{}
	defer func() {
		stats.Stack = execCtx.Snapshot()
		stats.Params = execCtx.Params()
	}()

	cfg.Logger.Debug("run started", "source", cfg.Source.Name(), "interactive", interactive, "strict", cfg.Factory.Strict)

	if interactive {
		FormatBanner(cfg.Out, cfg.NoColor)
	}

	lines := newLineReader(r, MaxLineLength)

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if interactive && cfg.Prompt {
			FormatPrompt(cfg.Out, cfg.NoColor)
		}

		// The read may block on a terminal; cancellation must not wait for it.
		res, ok := lines.nextContext(ctx.Done())
		if !ok {
			return stats, ctx.Err()
		}
		if res.err == io.EOF {
			break
		}
		if res.err != nil {
			return stats, fmt.Errorf("failed to read %s: %w", cfg.Source.Name(), res.err)
		}

		stats.Lines++
		if res.tooLong {
			stats.Errors++
			cfg.Logger.Debug("line skipped", "line", stats.Lines, "limit", MaxLineLength)
			FormatError(cfg.Err, ErrLineTooLong, cfg.NoColor)
			continue
		}
		line := res.text

		if interactive && strings.TrimSpace(line) == ExitCommand {
			cfg.Logger.Debug("exit requested", "line", stats.Lines)
			break
		}

		dispatched, err := ProcessLine(execCtx, cfg.Factory, line)
		if dispatched {
			stats.Commands++
		}
		if err != nil {
			stats.Errors++
			cfg.Logger.Debug("command failed", "line", stats.Lines, "text", line, "construction", calc.IsConstruction(err), "err", err)
			FormatError(cfg.Err, err, cfg.NoColor)
			continue
		}
		if dispatched {
			cfg.Logger.Debug("command executed", "line", stats.Lines, "text", line, "depth", execCtx.Depth())
		}
	}

	cfg.Logger.Debug("run finished", "lines", stats.Lines, "commands", stats.Commands, "errors", stats.Errors)

	if cfg.Summary {
		stats.Stack = execCtx.Snapshot()
		stats.Params = execCtx.Params()
		FormatSummary(cfg.Err, stats, cfg.Precision, cfg.NoColor)
	}

	return stats, nil
}

// ProcessLine tokenizes one line on whitespace and runs it: the first token
// names the command, the rest are its arguments. Blank lines are skipped and
// report dispatched as false.
func ProcessLine(ctx *calc.ExecutionContext, factory calc.Factory, line string) (dispatched bool, err error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false, nil
	}

	cmd, err := factory.New(ctx, tokens[0], tokens[1:])
	if err != nil {
		return true, err
	}
	return true, cmd.Execute(ctx)
}

func withDefaults(cfg Config) Config {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Err == nil {
		cfg.Err = os.Stderr
	}
	if cfg.Logger == nil {
		cfg.Logger = discardLogger()
	}
	if cfg.Precision == 0 {
		cfg.Precision = calc.DefaultPrecision
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}
	return cfg
}
