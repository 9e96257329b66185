package telemetry

import (
	"context"
	"io"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/tytanic-dev/tytanic/internal/errors"
)

const (
	noneTraceExporterType     traceExporterType = "none"
	consoleTraceExporterType  traceExporterType = "console"
	otlpHTTPTraceExporterType traceExporterType = "otlpHttp"
	otlpGrpcTraceExporterType traceExporterType = "otlpGrpc"
	httpTraceExporterType     traceExporterType = "http"

	traceParentParts = 4
)

type traceExporterType string

// Tracer wraps an OpenTelemetry tracer together with its provider.
type Tracer struct {
	trace.Tracer
	provider   *sdktrace.TracerProvider
	parentSpan *trace.SpanContext
}

// NewTracer creates a tracer for the configured exporter. It returns nil when tracing is disabled.
func NewTracer(ctx context.Context, appName, appVersion string, writer io.Writer, opts *Options) (*Tracer, error) {
	exporter, err := newTraceExporter(ctx, writer, opts)
	if err != nil {
		return nil, errors.New(err)
	}

	if exporter == nil {
		return nil, nil
	}

	res, err := newResource(appName, appVersion)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	tracer := &Tracer{
		Tracer:   provider.Tracer(appName),
		provider: provider,
	}

	if opts.TraceParent != "" {
		parent, err := parseTraceParent(opts.TraceParent)
		if err != nil {
			return nil, err
		}

		tracer.parentSpan = &parent
	}

	return tracer, nil
}

func newResource(appName, appVersion string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(appName),
			semconv.ServiceVersion(appVersion),
		),
	)
	if err != nil {
		return nil, errors.New(err)
	}

	return res, nil
}

func newTraceExporter(ctx context.Context, writer io.Writer, opts *Options) (sdktrace.SpanExporter, error) {
	switch traceExporterType(opts.TraceExporter) {
	case httpTraceExporterType:
		if opts.TraceExporterHTTPEndpoint == "" {
			return nil, &ErrorMissingEnvVariable{Vars: []string{"TT_TELEMETRY_TRACE_EXPORTER_HTTP_ENDPOINT"}}
		}

		config := []otlptracehttp.Option{otlptracehttp.WithEndpoint(opts.TraceExporterHTTPEndpoint)}
		if opts.Insecure {
			config = append(config, otlptracehttp.WithInsecure())
		}

		return otlptracehttp.New(ctx, config...)
	case otlpHTTPTraceExporterType:
		var config []otlptracehttp.Option
		if opts.Insecure {
			config = append(config, otlptracehttp.WithInsecure())
		}

		return otlptracehttp.New(ctx, config...)
	case otlpGrpcTraceExporterType:
		var config []otlptracegrpc.Option
		if opts.Insecure {
			config = append(config, otlptracegrpc.WithInsecure())
		}

		return otlptracegrpc.New(ctx, config...)
	case consoleTraceExporterType:
		return stdouttrace.New(stdouttrace.WithWriter(writer))
	default:
		return nil, nil
	}
}

// parseTraceParent parses a `version-traceid-spanid-flags` header.
func parseTraceParent(value string) (trace.SpanContext, error) {
	parts := strings.Split(value, "-")
	if len(parts) != traceParentParts {
		return trace.SpanContext{}, errors.Errorf("invalid TRACEPARENT value %s", value)
	}

	traceID, err := trace.TraceIDFromHex(parts[1])
	if err != nil {
		return trace.SpanContext{}, errors.New(err)
	}

	spanID, err := trace.SpanIDFromHex(parts[2])
	if err != nil {
		return trace.SpanContext{}, errors.New(err)
	}

	flag, err := strconv.Atoi(parts[3])
	if err != nil {
		return trace.SpanContext{}, errors.Errorf("invalid trace flags: %w", err)
	}

	flags := trace.FlagsSampled
	if flag == 0 {
		flags = 0
	}

	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: flags,
		Remote:     true,
	}), nil
}

// Trace runs fn inside a span named name. Without a tracer fn is run directly.
func (tracer *Tracer) Trace(ctx context.Context, name string, attrs map[string]any, fn func(childCtx context.Context) error) error {
	if tracer == nil || tracer.provider == nil {
		return fn(ctx)
	}

	if tracer.parentSpan != nil && !trace.SpanContextFromContext(ctx).IsValid() {
		ctx = trace.ContextWithSpanContext(ctx, *tracer.parentSpan)
	}

	ctx, span := tracer.Start(ctx, name, trace.WithAttributes(mapToAttributes(attrs)...))
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}
