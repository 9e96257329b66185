// Package check provides the `tt check` command, which validates a test set expression and
// prints it in normalized form.
package check

import (
	"github.com/urfave/cli/v2"

	"github.com/tytanic-dev/tytanic/internal/errors"
	"github.com/tytanic-dev/tytanic/options"
)

const CommandName = "check"

// NewCommand creates the check command.
func NewCommand(opts *options.Options) *cli.Command {
	return &cli.Command{
		Name:      CommandName,
		Usage:     "Check a test set expression and print it in normalized form.",
		ArgsUsage: "EXPRESSION",
		Action: errors.WithPanicHandling(func(ctx *cli.Context) error {
			if ctx.NArg() != 1 {
				return cli.Exit(errors.Errorf("expected exactly one expression, got %d arguments", ctx.NArg()), 1)
			}

			return Run(ctx.Context, opts.OptionsFromContext(ctx.Context), ctx.Args().First())
		}),
	}
}
