package filter

import (
	"context"

	"github.com/tytanic-dev/tytanic/internal/telemetry"
)

// Telemetry operation names for filter operations.
const (
	TelemetryOpFilterParse    = "filter_parse"
	TelemetryOpFilterEvaluate = "filter_evaluate"
	TelemetryOpFilterFinish   = "filter_finish"
)

// Telemetry attribute keys for filter operations.
const (
	AttrFilterQuery  = "filter.query"
	AttrFilterType   = "filter.type"
	AttrTestCount    = "test.count"
	AttrMatchedCount = "matched.count"
)

// TraceFilterParse wraps filter parsing with telemetry.
// The underlying Telemeter.Collect handles nil/unconfigured telemetry gracefully.
func TraceFilterParse(ctx context.Context, query string, fn func(ctx context.Context) error) error {
	return telemetry.TelemeterFromContext(ctx).Collect(ctx, TelemetryOpFilterParse, map[string]any{
		AttrFilterQuery: query,
	}, fn)
}

// TraceFilterEvaluate wraps filtering of a whole suite with telemetry.
func TraceFilterEvaluate(ctx context.Context, filterType string, testCount int, fn func(ctx context.Context) error) error {
	return telemetry.TelemeterFromContext(ctx).Collect(ctx, TelemetryOpFilterEvaluate, map[string]any{
		AttrFilterType: filterType,
		AttrTestCount:  testCount,
	}, fn)
}

// TraceFilterFinish wraps finishing a filter with telemetry.
func TraceFilterFinish(ctx context.Context, filterType string, matchedCount int, fn func(ctx context.Context) error) error {
	return telemetry.TelemeterFromContext(ctx).Collect(ctx, TelemetryOpFilterFinish, map[string]any{
		AttrFilterType:   filterType,
		AttrMatchedCount: matchedCount,
	}, fn)
}

// TypeName returns the name used for f in telemetry and logs.
func TypeName(f Filter) string {
	switch f.(type) {
	case *ExpressionFilter:
		return "expression"
	case *ExactFilter:
		return "exact"
	case *CombinedFilter:
		return "combined"
	case AllFilter, *AllFilter:
		return "all"
	case NoneFilter, *NoneFilter:
		return "none"
	}

	return "custom"
}
