package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path               string     `json:"path"`
	LastLoadCount      int        `json:"last_load_count"`
	DiscardedMalformed bool       `json:"discarded_malformed"`
	LastSave           *time.Time `json:"last_save,omitempty"`
	WatcherActive      bool       `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		Path:               r.Path,
		LastLoadCount:      r.lastLoadCount,
		DiscardedMalformed: r.discarded,
		LastSave:           r.lastSave,
		WatcherActive:      r.watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "json-file"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}
