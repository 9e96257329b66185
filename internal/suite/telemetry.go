package suite

import (
	"context"

	"github.com/tytanic-dev/tytanic/internal/telemetry"
)

const (
	TelemetryOpDiscover = "suite_discover"
	AttrTestsRoot       = "suite.tests_root"
)

// TraceDiscover wraps test discovery with telemetry.
func TraceDiscover(ctx context.Context, testsRoot string, fn func(ctx context.Context) error) error {
	return telemetry.TelemeterFromContext(ctx).Collect(ctx, TelemetryOpDiscover, map[string]any{
		AttrTestsRoot: testsRoot,
	}, fn)
}
