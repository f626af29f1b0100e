package notebook

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/notebook/internal/platform"
	"github.com/aretw0/notebook/pkg/core"
)

// Version exposes the version of the notebook CLI and library.
const Version = "0.1.0"

// --- Types ---

// Note is a public alias for the core note entity.
type Note = core.Note

// Store is a public alias for the core note store.
type Store = core.Store

// --- Configuration ---

// Option defines a functional option for configuring the notebook.
type Option = platform.Option

// WithLogger sets the logger for the store and its repository.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithReadOnly disables every mutation.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithClock overrides the time source used for note timestamps.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// --- Factory ---

// New opens the notes file at path and returns a ready Store.
func New(ctx context.Context, path string, opts ...Option) (*core.Store, error) {
	return platform.New(ctx, path, opts...)
}
