package filter

import (
	"github.com/tytanic-dev/tytanic/internal/test"
)

// Filter decides which discovered tests are part of a suite.
type Filter interface {
	// Filter reports whether t is selected.
	Filter(t *test.Test) (bool, error)
	// Finish is called once after every discovered test was passed to Filter.
	Finish() error
}

// AllFilter selects every test.
type AllFilter struct{}

// Filter implements Filter.
func (AllFilter) Filter(*test.Test) (bool, error) { return true, nil }

// Finish implements Filter.
func (AllFilter) Finish() error { return nil }

// NoneFilter selects no test.
type NoneFilter struct{}

// Filter implements Filter.
func (NoneFilter) Filter(*test.Test) (bool, error) { return false, nil }

// Finish implements Filter.
func (NoneFilter) Finish() error { return nil }

// CombinedFilter uses Exact if it is set and Expression otherwise. With neither set it
// selects nothing.
type CombinedFilter struct {
	Exact      *ExactFilter
	Expression *ExpressionFilter
}

// Filter implements Filter.
func (f *CombinedFilter) Filter(t *test.Test) (bool, error) {
	switch {
	case f.Exact != nil:
		return f.Exact.Filter(t)
	case f.Expression != nil:
		return f.Expression.Filter(t)
	}

	return false, nil
}

// Finish implements Filter.
func (f *CombinedFilter) Finish() error {
	if f.Expression != nil {
		if err := f.Expression.Finish(); err != nil {
			return err
		}
	}

	if f.Exact != nil {
		return f.Exact.Finish()
	}

	return nil
}
