package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"
)

// Store handles the business logic for notes.
// It owns the ordered in-memory collection and persists it through a
// Repository after every mutation.
type Store struct {
	mu       sync.RWMutex
	repo     Repository
	notes    []Note
	nextID   int
	readOnly bool
	now      func() time.Time
	logger   *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the time source used for created_at/updated_at.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithReadOnly makes every mutation fail with ErrReadOnly.
func WithReadOnly(enabled bool) StoreOption {
	return func(s *Store) {
		s.readOnly = enabled
	}
}

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates a new Store backed by repo.
// Call Open before use to load the persisted notes.
func NewStore(repo Repository, opts ...StoreOption) *Store {
	s := &Store{
		repo:   repo,
		nextID: 1,
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open (re)loads the notes from the repository and seeds the ID counter.
// The counter never moves backwards, so IDs issued earlier by this Store are
// not handed out again even if their notes were deleted.
func (s *Store) Open(ctx context.Context) error {
	notes, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = notes
	for _, n := range notes {
		if n.ID >= s.nextID {
			s.nextID = n.ID + 1
		}
	}
	s.logger.Debug("notes loaded", "count", len(notes), "next_id", s.nextID)
	return nil
}

// List returns all notes in insertion order.
func (s *Store) List(ctx context.Context) []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.notes)
}

// Get retrieves a note by its ID.
func (s *Store) Get(ctx context.Context, id int) (Note, error) {
	if err := checkID(id); err != nil {
		return Note{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return Note{}, fmt.Errorf("note %d: %w", id, ErrNotFound)
	}
	return s.notes[i], nil
}

// Add creates a note with the next free ID and persists the collection.
func (s *Store) Add(ctx context.Context, title, body string) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readOnly {
		return Note{}, ErrReadOnly
	}

	now := NewTimestamp(s.now())
	n := Note{
		ID:        s.nextID,
		Title:     title,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.commit(ctx, append(slices.Clone(s.notes), n)); err != nil {
		return Note{}, err
	}
	s.nextID++

	s.logger.Debug("note added", "id", n.ID)
	return n, nil
}

// Edit replaces the title and body of the first note matching id.
// CreatedAt is preserved; UpdatedAt is refreshed.
func (s *Store) Edit(ctx context.Context, id int, title, body string) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readOnly {
		return Note{}, ErrReadOnly
	}
	if err := checkID(id); err != nil {
		return Note{}, err
	}

	i := s.indexOf(id)
	if i < 0 {
		return Note{}, fmt.Errorf("note %d: %w", id, ErrNotFound)
	}

	next := slices.Clone(s.notes)
	next[i].Title = title
	next[i].Body = body
	next[i].UpdatedAt = NewTimestamp(s.now())

	if err := s.commit(ctx, next); err != nil {
		return Note{}, err
	}

	s.logger.Debug("note edited", "id", id)
	return next[i], nil
}

// Delete removes the first note matching id.
func (s *Store) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readOnly {
		return ErrReadOnly
	}
	if err := checkID(id); err != nil {
		return err
	}

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("note %d: %w", id, ErrNotFound)
	}

	if err := s.commit(ctx, slices.Delete(slices.Clone(s.notes), i, i+1)); err != nil {
		return err
	}

	s.logger.Debug("note deleted", "id", id)
	return nil
}

// Watch observes changes in the repository if supported.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx)
}

// commit persists next and swaps it in only when the write succeeded,
// leaving the previous collection in place on failure.
// Callers must hold s.mu.
func (s *Store) commit(ctx context.Context, next []Note) error {
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	s.notes = next
	return nil
}

// checkID rejects IDs that can never be issued.
func checkID(id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	return nil
}

func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.notes, func(n Note) bool { return n.ID == id })
}
