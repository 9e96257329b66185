package errors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// MultiError is an error type to track multiple errors.
type MultiError struct {
	inner *multierror.Error
}

// Error implements the error interface.
func (errs *MultiError) Error() string {
	flat := UnwrapMultiErrors(errs)

	lines := make([]string, 0, len(flat))
	for _, err := range flat {
		lines = append(lines, bulletIndent(err.Error()))
	}

	body := strings.Join(lines, "\n\n")

	if len(flat) == 1 {
		return fmt.Sprintf("error occurred:\n\n%s\n", body)
	}

	return fmt.Sprintf("%d errors occurred:\n\n%s\n", len(flat), body)
}

// WrappedErrors returns the error slice that this Error is wrapping.
func (errs *MultiError) WrappedErrors() []error {
	if errs == nil || errs.inner == nil {
		return nil
	}

	return errs.inner.WrappedErrors()
}

func (errs *MultiError) Unwrap() []error {
	return errs.WrappedErrors()
}

// ErrorOrNil returns an error interface if this Error represents
// a list of errors, or returns nil if the list of errors is empty.
func (errs *MultiError) ErrorOrNil() error {
	if errs == nil || errs.inner == nil {
		return nil
	}

	if err := errs.inner.ErrorOrNil(); err != nil {
		return errs
	}

	return nil
}

// Append returns a new MultiError with the given errors added. Nil errors are ignored.
func (errs *MultiError) Append(appendErrs ...error) *MultiError {
	if errs == nil {
		errs = &MultiError{inner: new(multierror.Error)}
	}

	return &MultiError{inner: multierror.Append(errs.inner, appendErrs...)}
}

// Len returns the number of wrapped errors.
func (errs *MultiError) Len() int {
	return len(errs.WrappedErrors())
}

// Sort orders the wrapped errors by message so output does not depend on scheduling.
func (errs *MultiError) Sort() {
	if errs == nil || errs.inner == nil {
		return
	}

	sort.SliceStable(errs.inner.Errors, func(i, j int) bool {
		return errs.inner.Errors[i].Error() < errs.inner.Errors[j].Error()
	})
}

func bulletIndent(str string) string {
	str = strings.ReplaceAll(str, "\r\n", "\n")
	lines := strings.Split(str, "\n")

	for i, line := range lines {
		if i == 0 {
			lines[i] = "* " + line
			continue
		}

		lines[i] = "  " + line
	}

	return strings.Join(lines, "\n")
}
