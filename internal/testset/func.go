package testset

import (
	"github.com/tytanic-dev/tytanic/internal/errors"
)

// FuncImpl is the implementation of a function value.
type FuncImpl func(ctx *Context, args []Value) (Value, error)

// Func is a function value. Like Set, it holds no mutable state.
type Func struct {
	call FuncImpl
}

// NewFunc creates a function value.
func NewFunc(call FuncImpl) Func {
	return Func{call: call}
}

// Type implements Value.
func (Func) Type() Type { return TypeFunc }

// Call calls the function with already evaluated arguments.
func (f Func) Call(ctx *Context, args []Value) (Value, error) {
	return f.call(ctx, args)
}

// SetConstructor returns a function that takes no arguments and returns set.
// The builtin constructors such as `all()` are defined this way.
func SetConstructor(name Identifier, set Set) Func {
	return NewFunc(func(ctx *Context, args []Value) (Value, error) {
		if err := ExpectNoArgs(name, ctx, args); err != nil {
			return nil, err
		}

		return set, nil
	})
}

// ExpectNoArgs fails with an InvalidArgumentCountError if any argument was passed.
func ExpectNoArgs(name Identifier, _ *Context, args []Value) error {
	if len(args) != 0 {
		return errors.New(InvalidArgumentCountError{Func: name, Expected: 0, Found: len(args)})
	}

	return nil
}

// ExpectArgsExact checks that exactly n arguments of type V were passed and returns them.
func ExpectArgsExact[V Value](name Identifier, _ *Context, args []Value, n int) ([]V, error) {
	if len(args) != n {
		return nil, errors.New(InvalidArgumentCountError{Func: name, Expected: n, Found: len(args)})
	}

	return expectAll[V](args)
}

// ExpectArgsMin checks that at least n arguments of type V were passed. It returns the first
// n arguments and the remaining ones separately.
func ExpectArgsMin[V Value](name Identifier, _ *Context, args []Value, n int) ([]V, []V, error) {
	if len(args) < n {
		return nil, nil, errors.New(InvalidArgumentCountError{Func: name, Expected: n, Found: len(args), IsMin: true})
	}

	values, err := expectAll[V](args)
	if err != nil {
		return nil, nil, err
	}

	return values[:n:n], values[n:], nil
}

// expectAll converts every argument, failing on the first one with the wrong type.
func expectAll[V Value](args []Value) ([]V, error) {
	values := make([]V, len(args))

	for i, arg := range args {
		value, err := ExpectType[V](arg)
		if err != nil {
			return nil, err
		}

		values[i] = value
	}

	return values, nil
}
