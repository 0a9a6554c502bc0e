// Package reporting forwards unhandled server errors to Sentry. Without a DSN
// every function is a no-op.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

const flushTimeout = 2 * time.Second

// Options configures the Sentry client.
type Options struct {
	DSN         string
	Environment string
	Release     string
	// BeforeSend can inspect or drop events before they leave the process.
	BeforeSend func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event
}

// Init configures the global Sentry hub and returns a function that flushes
// buffered events.
func Init(opts Options) (flush func(), err error) {
	if opts.DSN == "" {
		return func() {}, nil
	}
	err = sentry.Init(sentry.ClientOptions{
		Dsn:         opts.DSN,
		Environment: opts.Environment,
		Release:     opts.Release,
		BeforeSend:  opts.BeforeSend,
	})
	if err != nil {
		return nil, fmt.Errorf("init sentry: %w", err)
	}
	return func() { sentry.Flush(flushTimeout) }, nil
}

// CaptureError reports err through the hub attached to ctx, or the global hub.
func CaptureError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.CaptureException(err)
}
