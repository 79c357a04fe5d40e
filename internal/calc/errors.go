package calc

import (
	"errors"
	"fmt"
)

// Class separates failures found while building a command from failures
// found while running it.
type Class string

const (
	// ConstructionError is raised by the factory; no command is produced.
	ConstructionError Class = "construction"
	// ExecutionError is raised by Command.Execute against the context.
	ExecutionError Class = "execution"
)

// Sentinel errors. Every error returned by this package matches exactly
// one of them with errors.Is.
var (
	ErrUnknownCommand       = errors.New("unknown command")
	ErrArity                = errors.New("wrong number of arguments")
	ErrMalformedNumber      = errors.New("malformed number")
	ErrEmptyStack           = errors.New("empty stack")
	ErrInsufficientOperands = errors.New("insufficient operands")
	ErrNegativeSqrt         = errors.New("negative operand for SQRT")
	ErrDivideByZero         = errors.New("divide by zero")
)

// Error is the error type returned by the factory and by command execution.
type Error struct {
	Class Class
	// Command is the command name as typed, or the Kind name for execution errors.
	Command string
	Err     error
	// Suggestions holds close command names for ErrUnknownCommand.
	Suggestions []string
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Err.Error()
}

// Unwrap allows errors.Is against the sentinels
func (e *Error) Unwrap() error {
	return e.Err
}

// IsConstruction reports whether err is a factory-time failure.
func IsConstruction(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Class == ConstructionError
}

// IsExecution reports whether err is an execute-time failure.
func IsExecution(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Class == ExecutionError
}

// detailError carries a specific message while matching a sentinel.
type detailError struct {
	sentinel error
	msg      string
}

func (e *detailError) Error() string { return e.msg }

func (e *detailError) Is(target error) bool { return target == e.sentinel }

func detail(sentinel error, format string, args ...any) error {
	return &detailError{sentinel: sentinel, msg: fmt.Sprintf(format, args...)}
}

func constructionErr(name string, err error) *Error {
	return &Error{Class: ConstructionError, Command: name, Err: err}
}

func executionErr(k Kind, err error) *Error {
	return &Error{Class: ExecutionError, Command: k.String(), Err: err}
}
