package platform

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notebook/pkg/core"
)

type memoryRepository struct {
	notes []core.Note
}

func (m *memoryRepository) Load(ctx context.Context) ([]core.Note, error) { return m.notes, nil }

func (m *memoryRepository) Save(ctx context.Context, notes []core.Note) error {
	m.notes = notes
	return nil
}

func TestNew(t *testing.T) {
	t.Run("Uses JSON File By Default", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.json")
		ctx := context.Background()

		store, err := New(ctx, path)
		require.NoError(t, err)

		_, err = store.Add(ctx, "Groceries", "milk")
		require.NoError(t, err)
		assert.FileExists(t, path)

		state := store.State().(core.StoreState)
		assert.Equal(t, "json-file", state.RepositoryType)
	})

	t.Run("Loads Existing Notes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.json")
		data := `[{"id": 5, "title": "t", "body": "b", "created_at": "2024-01-01T00:00:00Z", "updated_at": "2024-01-01T00:00:00Z"}]`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		store, err := New(context.Background(), path)
		require.NoError(t, err)
		assert.Len(t, store.List(context.Background()), 1)
	})

	t.Run("Injected Repository Skips The File", func(t *testing.T) {
		repo := &memoryRepository{}
		path := filepath.Join(t.TempDir(), "unused.json")
		fixed := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

		store, err := New(context.Background(), path,
			WithRepository(repo),
			WithClock(func() time.Time { return fixed }),
		)
		require.NoError(t, err)

		n, err := store.Add(context.Background(), "x", "y")
		require.NoError(t, err)
		assert.True(t, n.CreatedAt.Equal(fixed))
		assert.Len(t, repo.notes, 1)
		assert.NoFileExists(t, path)
	})

	t.Run("Read Only Blocks Writes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.json")

		store, err := New(context.Background(), path, WithReadOnly(true))
		require.NoError(t, err)

		_, err = store.Add(context.Background(), "x", "y")
		assert.ErrorIs(t, err, core.ErrReadOnly)
		assert.NoFileExists(t, path)
	})
}
