// Package filter selects the tests of a suite.
//
// A filter is asked about every discovered test exactly once and finished after discovery.
// The filters in this package are:
//
//   - ExpressionFilter: a test set expression such as `unit() & !skip()`, evaluated against a
//     testset.Context. An expression prefixed with `all:` is accepted for compatibility with
//     older command lines, the prefix is recorded but does not change the selection.
//   - ExactFilter: an explicit list of test identifiers. Finishing fails with a
//     MissingTestsError if any of them was never seen.
//   - CombinedFilter: an exact filter if one was given, otherwise an expression filter.
//   - AllFilter and NoneFilter: trivial filters.
//
// Filters may be called from many goroutines at once.
package filter
