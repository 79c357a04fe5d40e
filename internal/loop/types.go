package loop

import (
	"io"
	"log/slog"
	"time"

	"github.com/itsmostafa/rpncalc/internal/calc"
	"github.com/itsmostafa/rpncalc/internal/source"
)

// Config holds the loop configuration
type Config struct {
	Source  source.Source
	Factory calc.Factory
	// Precision is the number of significant digits PRINT emits. Zero
	// means calc.DefaultPrecision; a negative value prints the shortest
	// exact form.
	Precision int
	// Out receives PRINT output, the banner and the prompt.
	Out io.Writer
	// Err receives error reports and the summary box.
	Err io.Writer
	// Prompt shows "> " before each line of an interactive source.
	Prompt  bool
	NoColor bool
	// Summary prints a Stats box to Err when the run ends.
	Summary bool
	Logger  *slog.Logger
	// Debounce is how long Watch waits for writes to settle (default 100ms).
	Debounce time.Duration
}

// Stats describes one completed run
type Stats struct {
	// Lines read, including blank lines and comments
	Lines int
	// Commands dispatched to the factory
	Commands int
	// Errors reported, construction and execution combined
	Errors int
	// Stack is the final operand stack, bottom to top
	Stack []float64
	// Params is the final parameter table
	Params map[string]float64
}
