// Package cli assembles the tt command-line application.
package cli

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/tytanic-dev/tytanic/cli/commands/check"
	"github.com/tytanic-dev/tytanic/cli/commands/list"
	"github.com/tytanic-dev/tytanic/cli/flags/global"
	"github.com/tytanic-dev/tytanic/internal/telemetry"
	"github.com/tytanic-dev/tytanic/options"
	"github.com/tytanic-dev/tytanic/pkg/log"
)

const AppName = "tt"

// Version is overwritten at build time with -ldflags "-X github.com/tytanic-dev/tytanic/cli.Version=...".
var Version = "dev"

// NewApp creates the tt CLI app.
func NewApp(opts *options.Options) *cli.App {
	app := cli.NewApp()
	app.Name = AppName
	app.Usage = "Select and list the tests of a tytanic project."
	app.UsageText = "tt [global options] <command> [command options] [arguments...]"
	app.Version = Version
	app.Writer = opts.Writer
	app.ErrWriter = opts.ErrWriter
	app.Flags = global.NewFlags(opts)
	app.Commands = NewCommands(opts)
	app.EnableBashCompletion = true
	// Exit codes are handled by the entrypoint.
	app.ExitErrHandler = func(*cli.Context, error) {}

	var telemeter *telemetry.Telemeter

	app.Before = func(ctx *cli.Context) error {
		if err := opts.Setup(); err != nil {
			return err
		}

		tlm, err := telemetry.NewTelemeter(ctx.Context, AppName, Version, opts.ErrWriter, opts.Telemetry)
		if err != nil {
			return err
		}

		telemeter = tlm
		ctx.Context = SetupContext(ctx.Context, opts, tlm)

		return nil
	}

	app.After = func(ctx *cli.Context) error {
		if telemeter == nil {
			return nil
		}

		return telemeter.Shutdown(context.WithoutCancel(ctx.Context))
	}

	return app
}

// NewCommands returns all commands of the app.
func NewCommands(opts *options.Options) cli.Commands {
	return cli.Commands{
		list.NewCommand(opts),
		check.NewCommand(opts),
	}
}

// SetupContext returns a context carrying the options, their logger and the telemeter.
func SetupContext(ctx context.Context, opts *options.Options, tlm *telemetry.Telemeter) context.Context {
	ctx = context.WithValue(ctx, options.ContextKey, opts)
	ctx = log.ContextWithLogger(ctx, opts.Logger)

	if tlm != nil {
		ctx = telemetry.ContextWithTelemeter(ctx, tlm)
	}

	return ctx
}
