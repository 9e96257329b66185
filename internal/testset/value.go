package testset

import (
	"github.com/tytanic-dev/tytanic/internal/errors"
)

// Test is the only capability the language requires from a test: a stable identifier.
// Host functions may type assert to their own test type to inspect anything else.
type Test interface {
	ID() string
}

// Type is the type tag of a Value, used for type checks and error messages.
type Type int

const (
	TypeTest Type = iota
	TypeSet
	TypeFunc
	TypeNum
	TypeStr
)

func (t Type) String() string {
	switch t {
	case TypeTest:
		return "test"
	case TypeSet:
		return "test set"
	case TypeFunc:
		return "function"
	case TypeNum:
		return "number"
	case TypeStr:
		return "string"
	}

	return "unknown"
}

// Value is the result of evaluating an expression.
type Value interface {
	Type() Type
}

// TestValue carries a concrete test.
type TestValue struct {
	Test Test
}

// Type implements Value.
func (TestValue) Type() Type { return TypeTest }

// Num is an unsigned integer value.
type Num uint64

// Type implements Value.
func (Num) Type() Type { return TypeNum }

// Str is a string value.
type Str string

// Type implements Value.
func (Str) Type() Type { return TypeStr }

// TypeOf returns the type tag of the value type V.
func TypeOf[V Value]() Type {
	var zero V
	return zero.Type()
}

// ExpectType returns value as V, or a TypeMismatchError if it has a different type.
// No implicit conversions are performed.
func ExpectType[V Value](value Value) (V, error) {
	if typed, ok := value.(V); ok {
		return typed, nil
	}

	var zero V

	return zero, errors.New(TypeMismatchError{
		Expected: []Type{TypeOf[V]()},
		Found:    value.Type(),
	})
}
