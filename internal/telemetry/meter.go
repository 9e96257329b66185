package telemetry

import (
	"context"
	"io"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	otelmetric "go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/tytanic-dev/tytanic/internal/errors"
)

const (
	noneMetricExporterType     metricExporterType = "none"
	consoleMetricExporterType  metricExporterType = "console"
	otlpHTTPMetricExporterType metricExporterType = "otlpHttp"
	grpcHTTPMetricExporterType metricExporterType = "grpcHttp"

	metricReadInterval = time.Second
)

type metricExporterType string

// Meter records durations and error counts of collected operations.
type Meter struct {
	otelmetric.Meter
	provider *sdkmetric.MeterProvider
}

// NewMeter creates a meter for the configured exporter. It returns nil when metrics are disabled.
func NewMeter(ctx context.Context, appName, appVersion string, writer io.Writer, opts *Options) (*Meter, error) {
	exporter, err := newMetricExporter(ctx, writer, opts)
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

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(metricReadInterval))),
	)

	return &Meter{
		Meter:    provider.Meter(appName),
		provider: provider,
	}, nil
}

func newMetricExporter(ctx context.Context, writer io.Writer, opts *Options) (sdkmetric.Exporter, error) {
	switch metricExporterType(opts.MetricExporter) {
	case otlpHTTPMetricExporterType:
		var config []otlpmetrichttp.Option
		if opts.Insecure {
			config = append(config, otlpmetrichttp.WithInsecure())
		}

		return otlpmetrichttp.New(ctx, config...)
	case grpcHTTPMetricExporterType:
		var config []otlpmetricgrpc.Option
		if opts.Insecure {
			config = append(config, otlpmetricgrpc.WithInsecure())
		}

		return otlpmetricgrpc.New(ctx, config...)
	case consoleMetricExporterType:
		return stdoutmetric.New(stdoutmetric.WithWriter(writer))
	default:
		return nil, nil
	}
}

// Time runs fn and records its duration in milliseconds, plus an error count if it fails.
func (meter *Meter) Time(ctx context.Context, name string, attrs map[string]any, fn func(childCtx context.Context) error) error {
	if meter == nil || meter.provider == nil {
		return fn(ctx)
	}

	metricAttrs := otelmetric.WithAttributes(mapToAttributes(attrs)...)
	start := time.Now()
	err := fn(ctx)

	if histogram, herr := meter.Int64Histogram(CleanMetricName(name+"_duration"), otelmetric.WithUnit("ms")); herr == nil {
		histogram.Record(ctx, time.Since(start).Milliseconds(), metricAttrs)
	}

	if err != nil {
		if counter, cerr := meter.Int64Counter(CleanMetricName(name + "_errors")); cerr == nil {
			counter.Add(ctx, 1, metricAttrs)
		}
	}

	return err
}
