package testset

import (
	"fmt"
	"strings"

	"github.com/tytanic-dev/tytanic/internal/errors"
)

// ErrorCode categorizes parse errors for hint lookup.
type ErrorCode int

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodeUnexpectedToken
	ErrorCodeUnexpectedEOF
	ErrorCodeExpectedEOF
	ErrorCodeIllegalToken
	ErrorCodeUnterminatedString
	ErrorCodeInvalidEscape
	ErrorCodeInvalidUnicodeEscape
	ErrorCodeInvalidPatternKind
	ErrorCodeEmptyPattern
	ErrorCodeInvalidGlob
	ErrorCodeInvalidRegex
	ErrorCodeNumberOverflow
	ErrorCodeMissingClosingParen
)

var errorTitles = map[ErrorCode]string{
	ErrorCodeUnknown:              "Parse error",
	ErrorCodeUnexpectedToken:      "Unexpected token",
	ErrorCodeUnexpectedEOF:        "Unexpected end of input",
	ErrorCodeExpectedEOF:          "Unexpected trailing input",
	ErrorCodeIllegalToken:         "Illegal character",
	ErrorCodeUnterminatedString:   "Unterminated string",
	ErrorCodeInvalidEscape:        "Invalid escape sequence",
	ErrorCodeInvalidUnicodeEscape: "Invalid unicode escape",
	ErrorCodeInvalidPatternKind:   "Invalid pattern kind",
	ErrorCodeEmptyPattern:         "Empty pattern",
	ErrorCodeInvalidGlob:          "Invalid glob",
	ErrorCodeInvalidRegex:         "Invalid regular expression",
	ErrorCodeNumberOverflow:       "Number too large",
	ErrorCodeMissingClosingParen:  "Unclosed parenthesis",
}

// Title returns a short, high-level description of the error code.
func (code ErrorCode) Title() string {
	if title, ok := errorTitles[code]; ok {
		return title
	}

	return errorTitles[ErrorCodeUnknown]
}

// ParseError represents an error that occurred while lexing or parsing an expression.
type ParseError struct {
	// Cause is the underlying error for invalid globs and regular expressions.
	Cause error
	// Found is the descriptive name of the offending rule, if any.
	Found   string
	Message string
	// Query is the full expression being parsed.
	Query        string
	TokenLiteral string
	// Expected holds the descriptive names of the rules that would have been accepted.
	Expected []string
	Position int
	// ErrorPosition is where the caret points, which differs from Position for unclosed parentheses.
	ErrorPosition int
	TokenLength   int
	ErrorCode     ErrorCode
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Position, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Title returns a short description of the error.
func (e *ParseError) Title() string {
	return e.ErrorCode.Title()
}

// UnknownBindingError is returned when an identifier is not bound in the context.
type UnknownBindingError struct {
	ID Identifier
	// Similar holds bound identifiers that look like ID, most similar first.
	Similar []Identifier
}

func (e UnknownBindingError) Error() string {
	return fmt.Sprintf("unknown binding: %s", e.ID)
}

// InvalidArgumentCountError is returned when a function is called with the wrong number of arguments.
type InvalidArgumentCountError struct {
	Func     Identifier
	Expected int
	Found    int
	// IsMin is true if Expected is a lower bound rather than an exact count.
	IsMin bool
}

func (e InvalidArgumentCountError) Error() string {
	switch {
	case e.IsMin:
		return fmt.Sprintf("function %s expects at least %d %s, got %d", e.Func, e.Expected, pluralArguments(e.Expected), e.Found)
	case e.Expected == 0:
		return fmt.Sprintf("function %s expects no arguments, got %d", e.Func, e.Found)
	default:
		return fmt.Sprintf("function %s expects exactly %d %s, got %d", e.Func, e.Expected, pluralArguments(e.Expected), e.Found)
	}
}

func pluralArguments(n int) string {
	if n == 1 {
		return "argument"
	}

	return "arguments"
}

// TypeMismatchError is returned when a value does not have any of the expected types.
type TypeMismatchError struct {
	Expected []Type
	Found    Type
}

func (e TypeMismatchError) Error() string {
	names := make([]string, len(e.Expected))
	for i, typ := range e.Expected {
		names[i] = typ.String()
	}

	return fmt.Sprintf("expected %s, found %s", joinAlternatives(names), e.Found)
}

// CustomError wraps an error raised by a host supplied function.
type CustomError struct {
	Err error
}

func (e CustomError) Error() string {
	return e.Err.Error()
}

func (e CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError wraps err so that callers can tell host function failures apart from
// errors of the language itself.
func NewCustomError(err error) error {
	return errors.New(CustomError{Err: err})
}

// joinAlternatives renders `a`, `a or b` and `a, b or c`.
func joinAlternatives(names []string) string {
	switch len(names) {
	case 0:
		return "nothing"
	case 1:
		return names[0]
	}

	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
