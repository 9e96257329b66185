package filter

import (
	"strings"

	"github.com/tytanic-dev/tytanic/internal/test"
	"github.com/tytanic-dev/tytanic/internal/testset"
)

// allPrefix is accepted in front of an expression for compatibility with older command lines.
const allPrefix = "all:"

// ExpressionFilter selects the tests contained in the test set an expression evaluates to.
type ExpressionFilter struct {
	ctx   *testset.Context
	expr  testset.Expression
	set   testset.Set
	input string
	all   bool
}

// NewExpressionFilter parses and evaluates input against ctx. Parse errors are returned as
// *testset.ParseError, evaluation errors as the evaluation error types of package testset.
func NewExpressionFilter(ctx *testset.Context, input string) (*ExpressionFilter, error) {
	expr, all := strings.CutPrefix(input, allPrefix)

	parsed, err := testset.Parse(expr)
	if err != nil {
		return nil, err
	}

	set, err := testset.EvalSet(ctx, parsed)
	if err != nil {
		return nil, err
	}

	return &ExpressionFilter{
		ctx:   ctx,
		expr:  parsed,
		set:   set,
		input: input,
		all:   all,
	}, nil
}

// Input returns the expression as it was given, including a leading `all:`.
func (f *ExpressionFilter) Input() string {
	return f.input
}

// All reports whether the expression was prefixed with `all:`.
func (f *ExpressionFilter) All() bool {
	return f.all
}

// Expression returns the parsed expression without the `all:` prefix.
func (f *ExpressionFilter) Expression() testset.Expression {
	return f.expr
}

// String returns the normalized expression, keeping a leading `all:`.
func (f *ExpressionFilter) String() string {
	if f.all {
		return allPrefix + f.expr.String()
	}

	return f.expr.String()
}

// Context returns the context the expression was evaluated against.
func (f *ExpressionFilter) Context() *testset.Context {
	return f.ctx
}

// Set returns the evaluated test set.
func (f *ExpressionFilter) Set() testset.Set {
	return f.set
}

// Map returns a copy of the filter whose set is fn applied to the current set.
func (f *ExpressionFilter) Map(fn func(testset.Set) testset.Set) *ExpressionFilter {
	mapped := *f
	mapped.set = fn(f.set)

	return &mapped
}

// Filter implements Filter.
func (f *ExpressionFilter) Filter(t *test.Test) (bool, error) {
	return f.set.Contains(f.ctx, t)
}

// Finish implements Filter.
func (f *ExpressionFilter) Finish() error {
	return nil
}
