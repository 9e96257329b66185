// Package signal cancels the run when the process is interrupted.
package signal

import (
	"context"
	"os"
	ossignal "os/signal"
	"syscall"
)

// InterruptSignals contains the signals that are treated as interrupts.
var InterruptSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// ContextCanceledCause is the cause of a context canceled by an interrupt signal.
type ContextCanceledCause struct {
	Signal os.Signal
}

// NewContextCanceledCause returns a new `ContextCanceledCause` instance.
func NewContextCanceledCause(sig os.Signal) *ContextCanceledCause {
	return &ContextCanceledCause{Signal: sig}
}

// Error implements the `Error` method.
func (cause ContextCanceledCause) Error() string {
	return "interrupted by signal " + cause.Signal.String()
}

// Unwrap implements the `Unwrap` method.
func (ContextCanceledCause) Unwrap() error {
	return context.Canceled
}

// NotifyContext returns a copy of parent that is canceled with a ContextCanceledCause when one of
// InterruptSignals arrives. The returned stop function cancels the context and stops relaying signals.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)

	signals := make(chan os.Signal, 1)
	ossignal.Notify(signals, InterruptSignals...)

	go func() {
		select {
		case sig := <-signals:
			cancel(NewContextCanceledCause(sig))
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		ossignal.Stop(signals)
		cancel(nil)
	}
}
