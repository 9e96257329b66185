package main

import (
	"context"
	"os"

	"github.com/tytanic-dev/tytanic/cli"
	"github.com/tytanic-dev/tytanic/cli/commands/common"
	"github.com/tytanic-dev/tytanic/internal/errors"
	"github.com/tytanic-dev/tytanic/internal/os/signal"
	"github.com/tytanic-dev/tytanic/options"
	"github.com/tytanic-dev/tytanic/pkg/log"
)

// The main entrypoint for tt
func main() {
	opts := options.NewOptions()

	defer errors.Recover(checkForErrorsAndExit(opts.Logger))

	app := cli.NewApp(opts)

	ctx, stop := signal.NotifyContext(context.Background())
	ctx = log.ContextWithLogger(ctx, opts.Logger)

	err := app.RunContext(ctx, os.Args)

	stop()

	checkForErrorsAndExit(opts.Logger)(err)
}

// If there is an error, display it in the console and exit with a non-zero exit code. Otherwise, exit 0.
func checkForErrorsAndExit(logger log.Logger) func(error) {
	return func(err error) {
		if err == nil {
			os.Exit(0)
		}

		var reported common.ReportedError
		if !errors.As(err, &reported) {
			logger.Error(err.Error())

			if errStack := errors.ErrorStack(err); errStack != "" {
				logger.Trace(errStack)
			}
		}

		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var withCode errors.ErrorWithExitCode
	if errors.As(err, &withCode) {
		return withCode.ExitCode
	}

	var exitCoder interface{ ExitCode() int }
	if errors.As(err, &exitCoder) {
		return exitCoder.ExitCode()
	}

	return common.ExitCodeFailure
}
