package plugins

import (
	"fmt"

	"kcl-lang.io/kcl-go/pkg/plugin"

	"github.com/macropower/pathstring/pkg/pserrors"
)

// SafeMethodArgs wraps [plugin.MethodArgs] with accessors that return errors
// instead of panicking on missing or mistyped arguments.
type SafeMethodArgs struct {
	Args *plugin.MethodArgs
}

func (sma *SafeMethodArgs) Exists(name string) bool {
	_, ok := sma.Args.KwArgs[name]

	return ok
}

func (sma *SafeMethodArgs) arg(i int) (any, error) {
	if i < 0 || i >= len(sma.Args.Args) {
		return nil, fmt.Errorf("%w: missing positional argument %d", pserrors.ErrInvalidArguments, i)
	}

	return sma.Args.Args[i], nil
}

// StrArg returns the positional string argument at index i.
func (sma *SafeMethodArgs) StrArg(i int) (string, error) {
	v, err := sma.arg(i)
	if err != nil {
		return "", err
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: argument %d: expected str, got %T", pserrors.ErrInvalidArguments, i, v)
	}

	return s, nil
}

// IntArg returns the positional integer argument at index i. Whole floats are
// accepted, since KCL numbers may arrive as JSON numbers.
func (sma *SafeMethodArgs) IntArg(i int) (int, error) {
	v, err := sma.arg(i)
	if err != nil {
		return 0, err
	}

	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}

	return 0, fmt.Errorf("%w: argument %d: expected int, got %v", pserrors.ErrInvalidArguments, i, v)
}

func (sma *SafeMethodArgs) StrKwArg(name, defaultValue string) string {
	if sma.Exists(name) {
		if s, ok := sma.Args.KwArgs[name].(string); ok {
			return s
		}
	}

	return defaultValue
}

func (sma *SafeMethodArgs) BoolKwArg(name string, defaultValue bool) bool {
	if sma.Exists(name) {
		if b, ok := sma.Args.KwArgs[name].(bool); ok {
			return b
		}
	}

	return defaultValue
}
