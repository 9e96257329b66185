package signal_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tytanic-dev/tytanic/internal/errors"
	"github.com/tytanic-dev/tytanic/internal/os/signal"
)

func TestContextCanceledCause(t *testing.T) {
	t.Parallel()

	var err error = signal.NewContextCanceledCause(os.Interrupt)

	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, errors.IsContextCanceled(err))
	assert.Equal(t, "interrupted by signal interrupt", err.Error())
}

func TestNotifyContext_Stop(t *testing.T) {
	t.Parallel()

	ctx, stop := signal.NotifyContext(t.Context())
	require.NoError(t, ctx.Err())

	stop()

	<-ctx.Done()
	require.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.ErrorIs(t, context.Cause(ctx), context.Canceled)
}
