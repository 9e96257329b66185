package filter

import (
	"slices"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/tytanic-dev/tytanic/internal/errors"
	"github.com/tytanic-dev/tytanic/internal/test"
)

// ExactFilter selects the tests with the given identifiers.
type ExactFilter struct {
	expected map[string]struct{}
	missing  *xsync.MapOf[string, struct{}]
}

// NewExactFilter creates a filter selecting exactly the given identifiers.
func NewExactFilter(ids ...string) *ExactFilter {
	f := &ExactFilter{
		expected: make(map[string]struct{}, len(ids)),
		missing:  xsync.NewMapOf[string, struct{}](),
	}

	for _, id := range ids {
		f.expected[id] = struct{}{}
		f.missing.Store(id, struct{}{})
	}

	return f
}

// IDs returns the selected identifiers in sorted order.
func (f *ExactFilter) IDs() []string {
	ids := make([]string, 0, len(f.expected))
	for id := range f.expected {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}

// Filter implements Filter.
func (f *ExactFilter) Filter(t *test.Test) (bool, error) {
	if _, ok := f.missing.LoadAndDelete(t.ID()); ok {
		return true, nil
	}

	_, ok := f.expected[t.ID()]

	return ok, nil
}

// Finish implements Filter. It fails if any identifier was never passed to Filter.
func (f *ExactFilter) Finish() error {
	if f.missing.Size() == 0 {
		return nil
	}

	missing := make([]string, 0, f.missing.Size())

	f.missing.Range(func(id string, _ struct{}) bool {
		missing = append(missing, id)
		return true
	})

	slices.Sort(missing)

	return errors.New(MissingTestsError{IDs: missing})
}

// MissingTestsError lists the identifiers given to an ExactFilter that were not found.
type MissingTestsError struct {
	IDs []string
}

func (e MissingTestsError) Error() string {
	if len(e.IDs) == 1 {
		return "test " + e.IDs[0] + " was not found"
	}

	return "tests " + strings.Join(e.IDs, ", ") + " were not found"
}
