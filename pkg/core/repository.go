package core

import "context"

// Repository defines the contract for persisting the note collection.
// The whole collection is read and written at once; implementations never
// see partial updates.
type Repository interface {
	// Load returns every persisted note in display order.
	// A missing or unreadable-as-data store yields an empty slice.
	Load(ctx context.Context) ([]Note, error)

	// Save replaces the persisted collection with notes.
	Save(ctx context.Context, notes []Note) error
}

// Watchable defines an interface for repositories that can report external changes.
type Watchable interface {
	// Watch emits an Event every time the underlying store changes.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}
