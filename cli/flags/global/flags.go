// Package global provides the CLI flags shared by all commands.
package global

import (
	"github.com/urfave/cli/v2"

	"github.com/tytanic-dev/tytanic/cli/flags"
	"github.com/tytanic-dev/tytanic/options"
	"github.com/tytanic-dev/tytanic/pkg/log"
)

const (
	LogLevelFlagName   = "log-level"
	NoColorFlagName    = "no-color"
	WorkingDirFlagName = "working-dir"
	MaxWorkersFlagName = "max-workers"

	TelemetryTraceExporterFlagName             = "telemetry-trace-exporter"
	TelemetryTraceExporterHTTPEndpointFlagName = "telemetry-trace-exporter-http-endpoint"
	TraceparentFlagName                        = "traceparent"
	TelemetryMetricExporterFlagName            = "telemetry-metric-exporter"
	TelemetryExporterInsecureFlagName          = "telemetry-exporter-insecure-endpoint"
)

// NewFlags creates the global flags bound to opts.
func NewFlags(opts *options.Options) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        WorkingDirFlagName,
			EnvVars:     flags.EnvVarsWithTtPrefix(WorkingDirFlagName),
			Destination: &opts.WorkingDir,
			Usage:       "The directory the project is searched from.",
			DefaultText: "current directory",
		},
		&cli.StringFlag{
			Name:        LogLevelFlagName,
			EnvVars:     flags.EnvVarsWithTtPrefix(LogLevelFlagName),
			Destination: &opts.LogLevelStr,
			Value:       opts.LogLevelStr,
			Usage:       "Sets the logging level. Supported levels: " + log.AllLevels.String() + ".",
		},
		&cli.BoolFlag{
			Name:        NoColorFlagName,
			EnvVars:     append(flags.EnvVarsWithTtPrefix(NoColorFlagName), "NO_COLOR"),
			Destination: &opts.NoColor,
			Usage:       "Disables colored output.",
		},
		&cli.IntFlag{
			Name:        MaxWorkersFlagName,
			EnvVars:     flags.EnvVarsWithTtPrefix(MaxWorkersFlagName),
			Destination: &opts.MaxWorkers,
			Usage:       "Maximum number of tests filtered concurrently. Overrides max_workers of tytanic.hcl.",
		},
		&cli.StringFlag{
			Name:        TelemetryTraceExporterFlagName,
			EnvVars:     flags.EnvVarsWithTtPrefix(TelemetryTraceExporterFlagName),
			Destination: &opts.Telemetry.TraceExporter,
			Usage:       "Enables traces. Supported exporters: none, console, otlpHttp, otlpGrpc, http.",
		},
		&cli.StringFlag{
			Name:        TelemetryTraceExporterHTTPEndpointFlagName,
			EnvVars:     flags.EnvVarsWithTtPrefix(TelemetryTraceExporterHTTPEndpointFlagName),
			Destination: &opts.Telemetry.TraceExporterHTTPEndpoint,
			Usage:       "Endpoint of the http trace exporter.",
		},
		&cli.StringFlag{
			Name:        TraceparentFlagName,
			EnvVars:     []string{"TRACEPARENT"},
			Destination: &opts.Telemetry.TraceParent,
			Usage:       "W3C traceparent of the span traces are attached to.",
		},
		&cli.StringFlag{
			Name:        TelemetryMetricExporterFlagName,
			EnvVars:     flags.EnvVarsWithTtPrefix(TelemetryMetricExporterFlagName),
			Destination: &opts.Telemetry.MetricExporter,
			Usage:       "Enables metrics. Supported exporters: none, console, otlpHttp, grpcHttp.",
		},
		&cli.BoolFlag{
			Name:        TelemetryExporterInsecureFlagName,
			EnvVars:     flags.EnvVarsWithTtPrefix(TelemetryExporterInsecureFlagName),
			Destination: &opts.Telemetry.Insecure,
			Usage:       "Disables TLS for the OTLP exporters.",
		},
	}
}
