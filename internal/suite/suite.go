// Package suite discovers the tests of a project and selects the ones a command runs on.
package suite

import (
	"context"

	"github.com/tytanic-dev/tytanic/internal/errors"
	"github.com/tytanic-dev/tytanic/internal/filter"
	"github.com/tytanic-dev/tytanic/internal/project"
	"github.com/tytanic-dev/tytanic/internal/test"
	"github.com/tytanic-dev/tytanic/internal/worker"
	"github.com/tytanic-dev/tytanic/pkg/log"
)

// Suite is the result of filtering the tests of a project.
type Suite struct {
	project  *project.Project
	matched  test.Tests
	filtered test.Tests
}

// Option configures Collect.
type Option func(*options)

type options struct {
	maxWorkers int
}

// WithMaxWorkers bounds the number of tests filtered concurrently. Zero or less means the number of CPUs.
func WithMaxWorkers(n int) Option {
	return func(o *options) {
		o.maxWorkers = n
	}
}

// Collect discovers the tests of p and splits them into matched and filtered tests using f.
// The filter is finished afterwards, so an exact filter reports identifiers that were not found.
func Collect(ctx context.Context, p *project.Project, f filter.Filter, opts ...Option) (*Suite, error) {
	o := &options{maxWorkers: p.Config().MaxWorkers}
	for _, opt := range opts {
		opt(o)
	}

	var tests test.Tests

	err := TraceDiscover(ctx, p.TestsRoot(), func(ctx context.Context) error {
		var err error

		tests, err = Discover(ctx, p)

		return err
	})
	if err != nil {
		return nil, err
	}

	return FromTests(ctx, p, tests, f, o.maxWorkers)
}

// FromTests filters already discovered tests.
func FromTests(ctx context.Context, p *project.Project, tests test.Tests, f filter.Filter, maxWorkers int) (*Suite, error) {
	logger := log.LoggerFromContext(ctx).WithFields(log.Fields{
		log.FieldKeyPrefix: "filter",
		log.FieldKeyFilter: filter.TypeName(f),
	})

	selected := make([]bool, len(tests))

	err := filter.TraceFilterEvaluate(ctx, filter.TypeName(f), len(tests), func(ctx context.Context) error {
		pool := worker.NewWorkerPool(maxWorkers)

		for i, t := range tests {
			pool.Submit(ctx, func(ctx context.Context) error {
				ok, err := f.Filter(t)
				if err != nil {
					return errors.New(FilterError{ID: t.ID(), Err: err})
				}

				selected[i] = ok

				return nil
			})
		}

		if err := pool.Wait(); err != nil {
			return err
		}

		return ctx.Err()
	})
	if err != nil {
		return nil, err
	}

	suite := &Suite{project: p}

	for i, t := range tests {
		if selected[i] {
			logger.WithField(log.FieldKeyTest, t.ID()).Trace("Matched")
			suite.matched = append(suite.matched, t)

			continue
		}

		suite.filtered = append(suite.filtered, t)
	}

	logger.Debugf("Matched %d of %d tests", len(suite.matched), len(tests))

	err = filter.TraceFilterFinish(ctx, filter.TypeName(f), len(suite.matched), func(context.Context) error {
		return f.Finish()
	})
	if err != nil {
		return nil, err
	}

	return suite, nil
}

// Project returns the project the suite belongs to.
func (s *Suite) Project() *project.Project {
	return s.project
}

// Matched returns the selected tests sorted by identifier.
func (s *Suite) Matched() test.Tests {
	return s.matched
}

// Filtered returns the tests that were not selected sorted by identifier.
func (s *Suite) Filtered() test.Tests {
	return s.filtered
}

// Len returns the number of discovered tests.
func (s *Suite) Len() int {
	return len(s.matched) + len(s.filtered)
}

// FilterError is returned when a filter fails for a test.
type FilterError struct {
	Err error
	ID  string
}

func (e FilterError) Error() string {
	return "could not filter test " + e.ID + ": " + e.Err.Error()
}

func (e FilterError) Unwrap() error {
	return e.Err
}
