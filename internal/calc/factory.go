package calc

import (
	"fmt"
	"strconv"
)

// Factory builds commands from a command name and its string arguments.
type Factory struct {
	// Strict rejects arguments passed to commands that take none. By
	// default such arguments are ignored. Comment text is always accepted.
	Strict bool
}

// NewCommand builds a command with the default, permissive factory.
func NewCommand(ctx *ExecutionContext, name string, args []string) (Command, error) {
	return Factory{}.New(ctx, name, args)
}

// New validates name and args and returns the matching command. ctx is
// only consulted when PUSH names a parameter.
func (f Factory) New(ctx *ExecutionContext, name string, args []string) (Command, error) {
	k, ok := ParseKind(name)
	if !ok {
		e := constructionErr(name, fmt.Errorf("%w %q", ErrUnknownCommand, name))
		e.Suggestions = Suggest(name)
		return nil, e
	}

	switch k {
	case KindPush:
		if len(args) != 1 {
			return nil, constructionErr(name, detail(ErrArity, "PUSH requires one argument"))
		}
		v, err := parsePushArgument(ctx, args[0])
		if err != nil {
			return nil, constructionErr(name, err)
		}
		return PushCommand{Value: v}, nil

	case KindDefine:
		switch len(args) {
		case 1:
			return DefineCommand{Name: args[0]}, nil
		case 2:
			v, err := parseNumber(args[1])
			if err != nil {
				return nil, constructionErr(name, err)
			}
			return DefineCommand{Name: args[0], Value: v}, nil
		default:
			return nil, constructionErr(name, detail(ErrArity, "DEFINE requires one or two arguments"))
		}
	}

	// Words after "#" are the comment itself, so strict mode leaves them alone.
	if f.Strict && k != KindComment && len(args) > 0 {
		return nil, constructionErr(name, detail(ErrArity, "%s takes no arguments", name))
	}

	switch k {
	case KindPop:
		return PopCommand{}, nil
	case KindPrint:
		return PrintCommand{}, nil
	case KindSqrt:
		return SqrtCommand{}, nil
	case KindAdd:
		return AddCommand{}, nil
	case KindSub:
		return SubCommand{}, nil
	case KindMul:
		return MulCommand{}, nil
	case KindDiv:
		return DivCommand{}, nil
	case KindComment:
		return CommentCommand{}, nil
	}
	panic(fmt.Sprintf("calc: no constructor for %s", k))
}

// parsePushArgument treats an argument whose first character is an ASCII
// letter as a parameter name and anything else as a numeric literal. This
// is a character-class heuristic: "x1" is a name, "1x" is a bad number.
func parsePushArgument(ctx *ExecutionContext, arg string) (float64, error) {
	if arg != "" && isASCIILetter(arg[0]) {
		return ctx.Resolve(arg), nil
	}
	return parseNumber(arg)
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, detail(ErrMalformedNumber, "malformed number %q", s)
	}
	return v, nil
}

func isASCIILetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
