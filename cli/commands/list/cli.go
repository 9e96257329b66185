// Package list provides the `tt list` command, which prints the tests selected by a test set
// expression or by exact test identifiers.
package list

import (
	"github.com/urfave/cli/v2"

	"github.com/tytanic-dev/tytanic/cli/flags"
	"github.com/tytanic-dev/tytanic/internal/errors"
	"github.com/tytanic-dev/tytanic/options"
)

const (
	CommandName  = "list"
	CommandAlias = "ls"

	ExpressionFlagName  = "expression"
	ExpressionFlagAlias = "e"
	FormatFlagName      = "format"
	NoSkipFlagName      = "no-skip"
	JSONFlagName        = "json"
	TreeFlagName        = "tree"
	TreeFlagAlias       = "T"
)

func NewFlags(opts *Options, prefix flags.Prefix) []cli.Flag {
	ttPrefix := prefix.Prepend(flags.TtPrefix)

	return []cli.Flag{
		&cli.StringFlag{
			Name:        ExpressionFlagName,
			Aliases:     []string{ExpressionFlagAlias},
			EnvVars:     ttPrefix.EnvVars(ExpressionFlagName),
			Destination: &opts.Expression,
			Usage:       "Test set expression selecting the tests, e.g. 'unit() & g:foo/*'. Defaults to default_filter of tytanic.hcl.",
		},
		&cli.StringFlag{
			Name:        FormatFlagName,
			EnvVars:     ttPrefix.EnvVars(FormatFlagName),
			Destination: &opts.Format,
			Value:       opts.Format,
			Usage:       "Output format for list results. Valid values: text, json, tree.",
		},
		&cli.BoolFlag{
			Name:        NoSkipFlagName,
			EnvVars:     ttPrefix.EnvVars(NoSkipFlagName),
			Destination: &opts.NoSkip,
			Usage:       "Include tests annotated with [skip].",
		},
		&cli.BoolFlag{
			Name:        JSONFlagName,
			EnvVars:     ttPrefix.EnvVars(JSONFlagName),
			Destination: &opts.JSON,
			Usage:       "Output in JSON format (equivalent to --format=json).",
		},
		&cli.BoolFlag{
			Name:        TreeFlagName,
			Aliases:     []string{TreeFlagAlias},
			EnvVars:     ttPrefix.EnvVars(TreeFlagName),
			Destination: &opts.Tree,
			Usage:       "Output in tree format (equivalent to --format=tree).",
		},
	}
}

func NewCommand(opts *options.Options) *cli.Command {
	cmdOpts := NewOptions(opts)

	return &cli.Command{
		Name:      CommandName,
		Aliases:   []string{CommandAlias},
		Usage:     "List the tests of the project.",
		ArgsUsage: "[TEST ID...]",
		Flags:     NewFlags(cmdOpts, flags.Prefix{CommandName}),
		Before: func(ctx *cli.Context) error {
			if cmdOpts.JSON {
				cmdOpts.Format = FormatJSON
			}

			if cmdOpts.Tree {
				cmdOpts.Format = FormatTree
			}

			cmdOpts.IDs = ctx.Args().Slice()

			if err := cmdOpts.Validate(); err != nil {
				return cli.Exit(err, 1)
			}

			return nil
		},
		Action: errors.WithPanicHandling(func(ctx *cli.Context) error {
			cmdOpts.Options = opts.OptionsFromContext(ctx.Context)

			return Run(ctx.Context, cmdOpts)
		}),
	}
}
