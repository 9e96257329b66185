// Package common holds helpers shared by the tt commands.
package common

import (
	"context"
	"fmt"
	"io"

	"github.com/tytanic-dev/tytanic/internal/errors"
	"github.com/tytanic-dev/tytanic/internal/filter"
	"github.com/tytanic-dev/tytanic/internal/testset"
)

const (
	// ExitCodeFailure is used for all errors without a more specific exit code.
	ExitCodeFailure = 1
	// ExitCodeInvalidExpression is used when a test set expression fails to parse or evaluate.
	ExitCodeInvalidExpression = 2
)

// ReportedError is an error whose diagnostic was already written to the user.
type ReportedError struct {
	Err error
}

func (e ReportedError) Error() string {
	return e.Err.Error()
}

func (e ReportedError) Unwrap() error {
	return e.Err
}

// IsExpressionError reports whether err was produced while parsing or evaluating a test set expression.
func IsExpressionError(err error) bool {
	var (
		parseErr    *testset.ParseError
		unknown     testset.UnknownBindingError
		argCount    testset.InvalidArgumentCountError
		typeErr     testset.TypeMismatchError
		customError testset.CustomError
	)

	return errors.As(err, &parseErr) ||
		errors.As(err, &unknown) ||
		errors.As(err, &argCount) ||
		errors.As(err, &typeErr) ||
		errors.As(err, &customError)
}

// ReportExpressionError writes a diagnostic for an expression error to w. The returned error
// makes the entrypoint exit with ExitCodeInvalidExpression without logging err again. Other
// errors are returned unchanged.
func ReportExpressionError(w io.Writer, err error, query string, useColor bool) error {
	if !IsExpressionError(err) {
		return err
	}

	if _, werr := fmt.Fprint(w, testset.FormatError(err, query, useColor)); werr != nil {
		return errors.New(werr)
	}

	return errors.ErrorWithExitCode{Err: ReportedError{Err: err}, ExitCode: ExitCodeInvalidExpression}
}

// ParseExpression parses and evaluates query against ctx inside the filter parse telemetry span.
func ParseExpression(ctx context.Context, tsCtx *testset.Context, query string) (*filter.ExpressionFilter, error) {
	var f *filter.ExpressionFilter

	err := filter.TraceFilterParse(ctx, query, func(context.Context) error {
		var err error

		f, err = filter.NewExpressionFilter(tsCtx, query)

		return err
	})

	return f, err
}
