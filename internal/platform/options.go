package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/notebook/pkg/core"
)

// options holds the internal configuration for the notebook.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	readOnly   bool
	clock      func() time.Time
}

// Option defines a functional option for configuring the notebook.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger for the store and its repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. an in-memory fake).
// If provided, the default JSON file adapter is skipped and the path is ignored.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithReadOnly enables read-only mode.
// Add, Edit and Delete return core.ErrReadOnly and the file is never written.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithClock overrides the time source used for note timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}
