package telemetry

import (
	"github.com/tytanic-dev/tytanic/internal/errors"
)

// Options configures which exporters the Telemeter uses.
type Options struct {
	// TraceExporter is one of none, console, otlpHttp, otlpGrpc, http.
	TraceExporter string
	// TraceExporterHTTPEndpoint is required for the http trace exporter.
	TraceExporterHTTPEndpoint string
	// TraceParent is a W3C traceparent header value to attach spans to.
	TraceParent string
	// MetricExporter is one of none, console, otlpHttp, grpcHttp.
	MetricExporter string
	// Insecure disables TLS for the OTLP exporters.
	Insecure bool
}

// ErrorMissingEnvVariable is returned when an exporter needs a setting that was not provided.
type ErrorMissingEnvVariable struct {
	Vars []string
}

func (err *ErrorMissingEnvVariable) Error() string {
	return "missing required environment variables: " + joinVars(err.Vars)
}

// ErrorInvalidExporter is returned for an unknown exporter name.
type ErrorInvalidExporter struct {
	Kind string
	Name string
}

func (err *ErrorInvalidExporter) Error() string {
	return "invalid " + err.Kind + " exporter " + `"` + err.Name + `"`
}

// Validate checks the exporter names.
func (opts *Options) Validate() error {
	switch traceExporterType(opts.TraceExporter) {
	case "", noneTraceExporterType, consoleTraceExporterType, otlpHTTPTraceExporterType, otlpGrpcTraceExporterType, httpTraceExporterType:
	default:
		return errors.New(&ErrorInvalidExporter{Kind: "trace", Name: opts.TraceExporter})
	}

	switch metricExporterType(opts.MetricExporter) {
	case "", noneMetricExporterType, consoleMetricExporterType, otlpHTTPMetricExporterType, grpcHTTPMetricExporterType:
	default:
		return errors.New(&ErrorInvalidExporter{Kind: "metric", Name: opts.MetricExporter})
	}

	if opts.TraceExporter == string(httpTraceExporterType) && opts.TraceExporterHTTPEndpoint == "" {
		return errors.New(&ErrorMissingEnvVariable{Vars: []string{"TT_TELEMETRY_TRACE_EXPORTER_HTTP_ENDPOINT"}})
	}

	return nil
}
