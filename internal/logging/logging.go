// Package logging builds the logr.Logger used across onboard.
//
// The interactive wizard owns the terminal, so logs only ever go to a file.
// Without a log file every logger discards.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// Options configures New.
type Options struct {
	// File is the log destination. Empty discards all output.
	File string
	// Verbosity is the highest V-level written.
	Verbosity int
}

// New returns a logger writing JSON lines to opts.File, and a closer for the
// underlying file. The closer is always non-nil.
func New(opts Options) (logr.Logger, func() error, error) {
	if opts.File == "" {
		return logr.Discard(), func() error { return nil }, nil
	}

	// #nosec G304
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return logr.Discard(), func() error { return nil }, fmt.Errorf("failed to open log file: %w", err)
	}
	return NewWriter(f, opts.Verbosity), f.Close, nil
}

// NewWriter returns a logger writing JSON lines to w.
func NewWriter(w io.Writer, verbosity int) logr.Logger {
	return funcr.NewJSON(func(obj string) {
		fmt.Fprintln(w, obj)
	}, funcr.Options{
		LogTimestamp: true,
		Verbosity:    verbosity,
	})
}

// IntoContext stores log in ctx.
func IntoContext(ctx context.Context, log logr.Logger) context.Context {
	return logr.NewContext(ctx, log)
}

// FromContext returns the logger stored in ctx, or a discarding logger.
func FromContext(ctx context.Context) logr.Logger {
	return logr.FromContextOrDiscard(ctx)
}
