package lifecycle

import (
	"context"
	"time"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/notebook/pkg/core"
)

// DefaultQuietPeriod is how long a burst of notes file events must stay
// silent before the source reports it.
const DefaultQuietPeriod = 50 * time.Millisecond

// SourceOption configures a notes Source.
type SourceOption func(*notesSource)

// WithQuietPeriod sets the coalescing window. Zero forwards every event as is.
func WithQuietPeriod(d time.Duration) SourceOption {
	return func(s *notesSource) {
		if d >= 0 {
			s.quiet = d
		}
	}
}

type notesSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
	quiet  time.Duration
}

// NewSource creates a lifecycle.Source reporting changes to the notes file.
//
// A single save touches the file several times (create, write, rename), so
// events for the same path that arrive within the quiet period are collapsed
// into the last one.
func NewSource(events <-chan core.Event, opts ...SourceOption) lifecycle.Source {
	s := &notesSource{
		events: events,
		out:    make(chan lifecycle.Event),
		quiet:  DefaultQuietPeriod,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *notesSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start forwards events until ctx is done or the input channel closes,
// then closes Events. A pending event is flushed when the input closes.
func (s *notesSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)

		var (
			pending *core.Event
			timer   *time.Timer
			fire    <-chan time.Time
		)
		stop := func() {
			if timer != nil {
				timer.Stop()
			}
			fire = nil
		}
		defer stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					if pending != nil {
						s.emit(ctx, *pending)
					}
					return nil
				}
				if s.quiet == 0 {
					if !s.emit(ctx, e) {
						return nil
					}
					continue
				}
				if pending != nil && pending.Path != e.Path {
					if !s.emit(ctx, *pending) {
						return nil
					}
				}
				pending = &e
				stop()
				timer = time.NewTimer(s.quiet)
				fire = timer.C
			case <-fire:
				fire = nil
				if !s.emit(ctx, *pending) {
					return nil
				}
				pending = nil
			}
		}
	})
	return nil
}

// emit reports false when ctx ended before e could be delivered.
func (s *notesSource) emit(ctx context.Context, e core.Event) bool {
	// core.Event satisfies lifecycle.Event through its String method.
	select {
	case s.out <- e:
		return true
	case <-ctx.Done():
		return false
	}
}
