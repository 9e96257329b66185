package check

import (
	"context"
	"fmt"

	"github.com/tytanic-dev/tytanic/cli/commands/common"
	"github.com/tytanic-dev/tytanic/internal/errors"
	"github.com/tytanic-dev/tytanic/internal/testset"
	"github.com/tytanic-dev/tytanic/internal/testset/builtin"
	"github.com/tytanic-dev/tytanic/options"
	"github.com/tytanic-dev/tytanic/pkg/log"
)

// Run parses and evaluates query against the default bindings and writes its normalized form.
func Run(ctx context.Context, opts *options.Options, query string) error {
	normalized, err := Normalize(ctx, builtin.Context(), query)
	if err != nil {
		return common.ReportExpressionError(opts.ErrWriter, err, query, opts.UseColor(opts.ErrWriter))
	}

	log.LoggerFromContext(ctx).Debugf("Expression %q is valid", query)

	if _, err := fmt.Fprintln(opts.Writer, normalized); err != nil {
		return errors.New(err)
	}

	return nil
}

// Normalize parses query, checks that it evaluates to a test set and returns it with explicit
// parentheses around every operation, e.g. `(a | (b & c))` for `a | b & c`.
func Normalize(ctx context.Context, tsCtx *testset.Context, query string) (string, error) {
	f, err := common.ParseExpression(ctx, tsCtx, query)
	if err != nil {
		return "", err
	}

	return f.String(), nil
}
