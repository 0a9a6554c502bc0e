package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WithShutdownSignals returns a context cancelled on an interrupt or
// terminate signal.
func WithShutdownSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
