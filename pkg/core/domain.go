package core

import "fmt"

// EventType represents the type of change observed on the notes file.
type EventType string

const (
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change in the persisted notes.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String renders the event for logs and lifecycle sources.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}
