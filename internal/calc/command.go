package calc

import (
	"fmt"
	"math"
)

// Command is one parsed calculator instruction. A command is built by the
// Factory, executed once and discarded.
type Command interface {
	Kind() Kind
	Execute(ctx *ExecutionContext) error
}

// PushCommand pushes a value fixed at construction time.
type PushCommand struct {
	Value float64
}

func (PushCommand) Kind() Kind { return KindPush }

func (c PushCommand) Execute(ctx *ExecutionContext) error {
	ctx.Push(c.Value)
	return nil
}

// PopCommand discards the top operand.
type PopCommand struct{}

func (PopCommand) Kind() Kind { return KindPop }

func (PopCommand) Execute(ctx *ExecutionContext) error {
	if ctx.Depth() == 0 {
		return executionErr(KindPop, detail(ErrEmptyStack, "pop from empty stack"))
	}
	ctx.Pop()
	return nil
}

// PrintCommand writes the top operand, leaving it on the stack.
type PrintCommand struct{}

func (PrintCommand) Kind() Kind { return KindPrint }

func (PrintCommand) Execute(ctx *ExecutionContext) error {
	if ctx.Depth() == 0 {
		return executionErr(KindPrint, detail(ErrEmptyStack, "print from empty stack"))
	}
	if _, err := fmt.Fprintln(ctx.Out, ctx.Format(ctx.Peek())); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// DefineCommand assigns a named parameter.
type DefineCommand struct {
	Name  string
	Value float64
}

func (DefineCommand) Kind() Kind { return KindDefine }

func (c DefineCommand) Execute(ctx *ExecutionContext) error {
	ctx.Define(c.Name, c.Value)
	return nil
}

// SqrtCommand replaces the top operand with its square root. A negative
// operand is left in place.
type SqrtCommand struct{}

func (SqrtCommand) Kind() Kind { return KindSqrt }

func (SqrtCommand) Execute(ctx *ExecutionContext) error {
	if ctx.Depth() == 0 {
		return executionErr(KindSqrt, detail(ErrEmptyStack, "sqrt from empty stack"))
	}
	v := ctx.Peek()
	if v < 0 {
		return executionErr(KindSqrt, detail(ErrNegativeSqrt, "the number under SQRT must not be negative: %s", ctx.Format(v)))
	}
	ctx.Pop()
	ctx.Push(math.Sqrt(v))
	return nil
}

// Binary operators take the top operand as the right-hand side: after
// PUSH a, PUSH b the result is a op b.

// AddCommand pushes a+b.
type AddCommand struct{}

func (AddCommand) Kind() Kind { return KindAdd }

func (AddCommand) Execute(ctx *ExecutionContext) error {
	a, b, err := popOperands(ctx, KindAdd, "addition")
	if err != nil {
		return err
	}
	ctx.Push(a + b)
	return nil
}

// SubCommand pushes a-b.
type SubCommand struct{}

func (SubCommand) Kind() Kind { return KindSub }

func (SubCommand) Execute(ctx *ExecutionContext) error {
	a, b, err := popOperands(ctx, KindSub, "subtraction")
	if err != nil {
		return err
	}
	ctx.Push(a - b)
	return nil
}

// MulCommand pushes a*b.
type MulCommand struct{}

func (MulCommand) Kind() Kind { return KindMul }

func (MulCommand) Execute(ctx *ExecutionContext) error {
	a, b, err := popOperands(ctx, KindMul, "multiplication")
	if err != nil {
		return err
	}
	ctx.Push(a * b)
	return nil
}

// DivCommand pushes a/b. Both operands are consumed before the zero check,
// so a division by zero leaves the stack two shorter with no result.
type DivCommand struct{}

func (DivCommand) Kind() Kind { return KindDiv }

func (DivCommand) Execute(ctx *ExecutionContext) error {
	a, b, err := popOperands(ctx, KindDiv, "division")
	if err != nil {
		return err
	}
	if b == 0 {
		return executionErr(KindDiv, ErrDivideByZero)
	}
	ctx.Push(a / b)
	return nil
}

// CommentCommand does nothing.
type CommentCommand struct{}

func (CommentCommand) Kind() Kind { return KindComment }

func (CommentCommand) Execute(*ExecutionContext) error { return nil }

// popOperands removes b (the top) and then a. The stack is untouched when
// fewer than two operands are available.
func popOperands(ctx *ExecutionContext, k Kind, op string) (a, b float64, err error) {
	if ctx.Depth() < 2 {
		return 0, 0, executionErr(k, detail(ErrInsufficientOperands, "insufficient operands for %s", op))
	}
	b = ctx.Pop()
	a = ctx.Pop()
	return a, b, nil
}
