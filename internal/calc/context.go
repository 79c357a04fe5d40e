// Package calc implements the RPN calculator engine: the execution context
// shared by all commands, the command variants and the factory that builds
// them from tokenized input.
package calc

import (
	"io"
	"maps"
	"math"
	"os"
	"strconv"

	"github.com/itsmostafa/rpncalc/internal/stack"
)

// DefaultPrecision is the number of significant digits PRINT emits.
const DefaultPrecision = 6

// ExecutionContext holds the calculator state for one run.
type ExecutionContext struct {
	// Out receives PRINT output.
	Out io.Writer
	// Precision is the number of significant digits PRINT emits;
	// zero or less prints the shortest exact representation.
	Precision int

	operands *stack.Stack[float64]
	params   map[string]float64
}

// NewExecutionContext returns an empty context writing to out
// (os.Stdout when nil).
func NewExecutionContext(out io.Writer) *ExecutionContext {
	if out == nil {
		out = os.Stdout
	}
	return &ExecutionContext{
		Out:       out,
		Precision: DefaultPrecision,
		operands:  stack.New[float64](16),
		params:    make(map[string]float64),
	}
}

// Push places v on top of the operand stack.
func (c *ExecutionContext) Push(v float64) {
	c.operands.Push(v)
}

// Pop removes and returns the top operand. Callers check Depth first.
func (c *ExecutionContext) Pop() float64 {
	return c.operands.Pop()
}

// Peek returns the top operand. Callers check Depth first.
func (c *ExecutionContext) Peek() float64 {
	return c.operands.Peek()
}

// Depth returns the number of operands on the stack.
func (c *ExecutionContext) Depth() int {
	return c.operands.Len()
}

// Snapshot returns the operands ordered bottom to top.
func (c *ExecutionContext) Snapshot() []float64 {
	return c.operands.Values()
}

// Param looks up a defined parameter.
func (c *ExecutionContext) Param(name string) (float64, bool) {
	v, ok := c.params[name]
	return v, ok
}

// Resolve returns the value of name, defining it as 0 if it is unknown.
func (c *ExecutionContext) Resolve(name string) float64 {
	v, ok := c.params[name]
	if !ok {
		c.params[name] = 0
	}
	return v
}

// Define sets name to v, replacing any earlier value.
func (c *ExecutionContext) Define(name string, v float64) {
	c.params[name] = v
}

// Params returns a copy of the parameter table.
func (c *ExecutionContext) Params() map[string]float64 {
	return maps.Clone(c.params)
}

// Format renders v the way PRINT does.
func (c *ExecutionContext) Format(v float64) string {
	return FormatValue(v, c.Precision)
}

// FormatValue renders v in %g style with the given number of significant
// digits, e.g. 7 -> "7", 1e6 -> "1e+06", 10.5 -> "10.5".
func FormatValue(v float64, precision int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if precision <= 0 {
		precision = -1
	}
	return strconv.FormatFloat(v, 'g', precision, 64)
}
