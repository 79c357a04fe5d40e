package calc

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(values ...float64) (*ExecutionContext, *bytes.Buffer) {
	var out bytes.Buffer
	ctx := NewExecutionContext(&out)
	for _, v := range values {
		ctx.Push(v)
	}
	return ctx, &out
}

func TestPushCommand(t *testing.T) {
	for _, v := range []float64{42, -1, 10.5} {
		ctx, _ := newTestContext()
		require.NoError(t, PushCommand{Value: v}.Execute(ctx))
		assert.Equal(t, 1, ctx.Depth())
		assert.Equal(t, v, ctx.Peek())
	}
}

func TestPopCommand(t *testing.T) {
	t.Run("discards top", func(t *testing.T) {
		ctx, _ := newTestContext(10.5, 3)
		require.NoError(t, PopCommand{}.Execute(ctx))
		assert.Equal(t, []float64{10.5}, ctx.Snapshot())
	})

	t.Run("empty stack", func(t *testing.T) {
		ctx, _ := newTestContext()
		err := PopCommand{}.Execute(ctx)
		require.ErrorIs(t, err, ErrEmptyStack)
		assert.True(t, IsExecution(err))
		assert.EqualError(t, err, "pop from empty stack")
	})
}

func TestPrintCommand(t *testing.T) {
	t.Run("writes top without removing it", func(t *testing.T) {
		ctx, out := newTestContext(1, 7)
		require.NoError(t, PrintCommand{}.Execute(ctx))
		assert.Equal(t, "7\n", out.String())
		assert.Equal(t, []float64{1, 7}, ctx.Snapshot())
	})

	t.Run("empty stack", func(t *testing.T) {
		ctx, out := newTestContext()
		err := PrintCommand{}.Execute(ctx)
		require.ErrorIs(t, err, ErrEmptyStack)
		assert.EqualError(t, err, "print from empty stack")
		assert.Empty(t, out.String())
	})
}

func TestDefineCommand(t *testing.T) {
	ctx, _ := newTestContext()
	require.NoError(t, DefineCommand{Name: "x", Value: 10}.Execute(ctx))
	require.NoError(t, DefineCommand{Name: "x", Value: 3}.Execute(ctx))
	require.NoError(t, DefineCommand{Name: "y"}.Execute(ctx))

	want := map[string]float64{"x": 3, "y": 0}
	if diff := cmp.Diff(want, ctx.Params()); diff != "" {
		t.Errorf("Params() mismatch (-want +got):\n%s", diff)
	}
	assert.Zero(t, ctx.Depth())
}

func TestSqrtCommand(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"four", 4, 2},
		{"zero", 0, 0},
		{"twenty five", 25, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := newTestContext(tt.in)
			require.NoError(t, SqrtCommand{}.Execute(ctx))
			assert.Equal(t, []float64{tt.want}, ctx.Snapshot())
		})
	}

	t.Run("negative operand stays on the stack", func(t *testing.T) {
		ctx, _ := newTestContext(-4)
		err := SqrtCommand{}.Execute(ctx)
		require.ErrorIs(t, err, ErrNegativeSqrt)
		assert.Equal(t, []float64{-4}, ctx.Snapshot())
	})

	t.Run("empty stack", func(t *testing.T) {
		ctx, _ := newTestContext()
		require.ErrorIs(t, SqrtCommand{}.Execute(ctx), ErrEmptyStack)
	})
}

func TestBinaryCommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		a, b float64
		want float64
	}{
		{"add", AddCommand{}, 2, 5, 7},
		{"add parameters", AddCommand{}, -10, 5, -5},
		{"sub keeps operand order", SubCommand{}, 2, 5, -3},
		{"sub parameters", SubCommand{}, -10, 5, -15},
		{"mul", MulCommand{}, 2, -5, -10},
		{"mul by zero", MulCommand{}, -10, 0, 0},
		{"div", DivCommand{}, 10, 5, 2},
		{"div negative", DivCommand{}, -25, 5, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := newTestContext(tt.a, tt.b)
			require.NoError(t, tt.cmd.Execute(ctx))
			assert.Equal(t, []float64{tt.want}, ctx.Snapshot())
		})
	}
}

func TestBinaryCommands_InsufficientOperands(t *testing.T) {
	for _, cmd := range []Command{AddCommand{}, SubCommand{}, MulCommand{}, DivCommand{}} {
		for _, initial := range [][]float64{nil, {3}} {
			t.Run(cmd.Kind().String(), func(t *testing.T) {
				ctx, _ := newTestContext(initial...)
				err := cmd.Execute(ctx)
				require.ErrorIs(t, err, ErrInsufficientOperands)
				assert.True(t, IsExecution(err))
				assert.Equal(t, len(initial), ctx.Depth(), "stack must not change")
			})
		}
	}
}

func TestDivCommand_ByZeroConsumesOperands(t *testing.T) {
	ctx, _ := newTestContext(1, 5, 0)

	err := DivCommand{}.Execute(ctx)
	require.ErrorIs(t, err, ErrDivideByZero)
	assert.EqualError(t, err, "divide by zero")

	// Both operands are gone and no result was pushed.
	assert.Equal(t, []float64{1}, ctx.Snapshot())
}

func TestCommentCommand(t *testing.T) {
	ctx, out := newTestContext(1, 2)
	require.NoError(t, CommentCommand{}.Execute(ctx))
	assert.Equal(t, []float64{1, 2}, ctx.Snapshot())
	assert.Empty(t, out.String())
	assert.Empty(t, ctx.Params())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPrintCommand_WriteFailure(t *testing.T) {
	ctx := NewExecutionContext(failingWriter{})
	ctx.Push(1)
	err := PrintCommand{}.Execute(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed")
}
