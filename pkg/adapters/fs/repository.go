package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/notebook/pkg/core"
)

// DefaultFileName is the notes file used when no path is configured.
const DefaultFileName = "notes.json"

// Repository implements core.Repository on top of a single JSON file
// holding an array of notes.
type Repository struct {
	Path   string
	config Config

	mu            sync.RWMutex
	lastLoadCount int
	discarded     bool
	lastSave      *time.Time
	watcherActive bool
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path   string
	Logger *slog.Logger
	Perm   os.FileMode // Defaults to 0644.
}

// NewRepository creates a new file-backed repository.
func NewRepository(config Config) *Repository {
	if config.Path == "" {
		config.Path = DefaultFileName
	}
	if config.Perm == 0 {
		config.Perm = 0644
	}
	return &Repository{
		Path:   config.Path,
		config: config,
	}
}

// Load reads the notes file.
//
// A missing or empty file is an empty collection. A file that does not hold
// a valid JSON array of notes is also treated as empty: the problem is
// logged and no error is returned.
func (r *Repository) Load(ctx context.Context) ([]core.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.recordLoad(0, false)
			return []core.Note{}, nil
		}
		return nil, fmt.Errorf("failed to read notes file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		r.recordLoad(0, false)
		return []core.Note{}, nil
	}

	var notes []core.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		if r.config.Logger != nil {
			r.config.Logger.Warn("notes file is malformed, starting empty", "path", r.Path, "error", err)
		}
		r.recordLoad(0, true)
		return []core.Note{}, nil
	}
	if notes == nil {
		notes = []core.Note{}
	}

	r.recordLoad(len(notes), false)
	return notes, nil
}

// Save overwrites the notes file with the full collection.
//
// Workflow:
//  1. Create the parent directory if missing.
//  2. Serialize the notes as an indented JSON array.
//  3. Write atomically (temp file + rename) so readers never see a partial file.
func (r *Repository) Save(ctx context.Context, notes []core.Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if notes == nil {
		notes = []core.Note{}
	}

	if err := os.MkdirAll(filepath.Dir(r.Path), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize notes: %w", err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(r.Path, data, r.config.Perm); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if r.config.Logger != nil {
		r.config.Logger.Debug("notes saved", "path", r.Path, "count", len(notes))
	}
	r.recordSave()
	return nil
}

func (r *Repository) recordLoad(count int, discarded bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastLoadCount = count
	r.discarded = discarded
}

func (r *Repository) recordSave() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastSave = &now
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
