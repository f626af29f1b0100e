package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/notebook/pkg/core"
)

// Watch observes the notes file and emits an event whenever it is rewritten
// or removed by anyone, this process included.
//
// The parent directory is watched rather than the file itself because an
// atomic save replaces the inode, which would silently detach a file watch.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	target, err := filepath.Abs(r.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve notes path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	events := make(chan core.Event)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer watcher.Close()
		defer r.setWatcherActive(false)

		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				e, relevant := r.mapEvent(event, target)
				if !relevant {
					continue
				}
				select {
				case events <- e:
				case <-ctx.Done():
					return nil
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if r.config.Logger != nil {
					r.config.Logger.Error("watcher error", "error", err)
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		if r.config.Logger != nil {
			r.config.Logger.Error("watcher panic", "error", err)
		}
	}))

	return events, nil
}

// mapEvent translates a raw filesystem event into a domain event.
// Events for other files and for atomic-write temp files are dropped.
func (r *Repository) mapEvent(event fsnotify.Event, target string) (core.Event, bool) {
	if isTempFile(event.Name) {
		return core.Event{}, false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return core.Event{}, false
	}

	if r.config.Logger != nil {
		r.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())
	}

	e := core.Event{Path: r.Path, Timestamp: time.Now().Unix()}
	switch {
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		e.Type = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		e.Type = core.EventDelete
	default:
		return core.Event{}, false
	}
	return e, true
}
