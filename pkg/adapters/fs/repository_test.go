package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notebook/pkg/adapters/fs"
	"github.com/aretw0/notebook/pkg/core"
)

// setupRepo creates a repository pointing at a notes file inside a fresh temp dir.
func setupRepo(t *testing.T, opts ...func(*fs.Config)) (*fs.Repository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "notes.json")
	cfg := fs.Config{Path: path}
	for _, opt := range opts {
		opt(&cfg)
	}
	return fs.NewRepository(cfg), path
}

func sampleNotes() []core.Note {
	ts := core.NewTimestamp(time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC))
	return []core.Note{
		{ID: 1, Title: "Groceries", Body: "milk", CreatedAt: ts, UpdatedAt: ts},
		{ID: 3, Title: "Ideas", Body: "write more Go", CreatedAt: ts, UpdatedAt: ts},
	}
}

func TestLoad(t *testing.T) {
	t.Run("Missing File Is Empty", func(t *testing.T) {
		repo, _ := setupRepo(t)

		notes, err := repo.Load(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, notes)
		assert.Empty(t, notes)
	})

	t.Run("Empty File Is Empty", func(t *testing.T) {
		repo, path := setupRepo(t)
		require.NoError(t, os.WriteFile(path, []byte("  \n"), 0644))

		notes, err := repo.Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("Malformed JSON Is Silently Empty", func(t *testing.T) {
		repo, path := setupRepo(t)
		require.NoError(t, os.WriteFile(path, []byte(`[{"id": 1, "title": `), 0644))

		notes, err := repo.Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, notes)

		state := repo.State().(fs.RepositoryState)
		assert.True(t, state.DiscardedMalformed)
	})

	t.Run("Wrong Shape Is Silently Empty", func(t *testing.T) {
		repo, path := setupRepo(t)
		require.NoError(t, os.WriteFile(path, []byte(`{"id": 1}`), 0644))

		notes, err := repo.Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("Reads Files With Zone-less Timestamps", func(t *testing.T) {
		repo, path := setupRepo(t)
		legacy := `[{"id": 1, "title": "Groceries", "body": "milk", "created_at": "2024-02-03T04:05:06.123456", "updated_at": "2024-02-03T04:05:06.123456"}]`
		require.NoError(t, os.WriteFile(path, []byte(legacy), 0644))

		notes, err := repo.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "Groceries", notes[0].Title)
		assert.Equal(t, 2024, notes[0].CreatedAt.Year())
	})

	t.Run("Null Timestamp Does Not Discard The File", func(t *testing.T) {
		repo, path := setupRepo(t)
		data := `[
			{"id": 1, "title": "Groceries", "body": "milk", "created_at": "2024-02-03T04:05:06Z", "updated_at": "2024-02-03T04:05:06Z"},
			{"id": 2, "title": "Ideas", "body": "more Go", "created_at": "2024-02-03T04:05:06Z", "updated_at": null}
		]`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		notes, err := repo.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "Ideas", notes[1].Title)
		assert.True(t, notes[1].UpdatedAt.IsZero())
		assert.False(t, repo.State().(fs.RepositoryState).DiscardedMalformed)

		require.NoError(t, repo.Save(context.Background(), notes))
		reloaded, err := repo.Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, reloaded, 2)
	})

	t.Run("Unreadable Path Returns Error", func(t *testing.T) {
		dir := t.TempDir()
		// A directory where the file should be cannot be read as a file.
		repo := fs.NewRepository(fs.Config{Path: dir})

		_, err := repo.Load(context.Background())
		assert.Error(t, err)
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		repo, _ := setupRepo(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := repo.Load(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSave(t *testing.T) {
	t.Run("Round Trips Notes In Order", func(t *testing.T) {
		repo, _ := setupRepo(t)
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, sampleNotes()))

		got, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		for i, want := range sampleNotes() {
			assert.Equal(t, want.ID, got[i].ID)
			assert.Equal(t, want.Title, got[i].Title)
			assert.Equal(t, want.Body, got[i].Body)
			assert.True(t, want.CreatedAt.Equal(got[i].CreatedAt.Time))
			assert.True(t, want.UpdatedAt.Equal(got[i].UpdatedAt.Time))
		}
	})

	t.Run("Writes A JSON Array With Expected Fields", func(t *testing.T) {
		repo, path := setupRepo(t)
		require.NoError(t, repo.Save(context.Background(), sampleNotes()[:1]))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `[{
			"id": 1,
			"title": "Groceries",
			"body": "milk",
			"created_at": "2024-02-03T04:05:06Z",
			"updated_at": "2024-02-03T04:05:06Z"
		}]`, string(data))
	})

	t.Run("Empty Collection Is Written As Empty Array", func(t *testing.T) {
		repo, path := setupRepo(t)
		require.NoError(t, repo.Save(context.Background(), nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(data))
	})

	t.Run("Creates Parent Directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "notes.json")
		repo := fs.NewRepository(fs.Config{Path: path})

		require.NoError(t, repo.Save(context.Background(), sampleNotes()))
		assert.FileExists(t, path)
	})

	t.Run("Overwrites Previous Content", func(t *testing.T) {
		repo, _ := setupRepo(t)
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, sampleNotes()))
		require.NoError(t, repo.Save(ctx, sampleNotes()[1:]))

		got, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 3, got[0].ID)
	})

	t.Run("Records Save In State", func(t *testing.T) {
		repo, path := setupRepo(t)
		require.NoError(t, repo.Save(context.Background(), sampleNotes()))

		state := repo.State().(fs.RepositoryState)
		assert.Equal(t, path, state.Path)
		assert.NotNil(t, state.LastSave)
		assert.Equal(t, "json-file", repo.ComponentType())
	})
}

func TestNewRepository_DefaultPath(t *testing.T) {
	repo := fs.NewRepository(fs.Config{})
	assert.Equal(t, fs.DefaultFileName, repo.Path)
}

func TestStoreIntegration(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	store := core.NewStore(repo)
	require.NoError(t, store.Open(ctx))

	_, err := store.Add(ctx, "Groceries", "milk")
	require.NoError(t, err)

	reopened := core.NewStore(repo)
	require.NoError(t, reopened.Open(ctx))

	notes := reopened.List(ctx)
	require.Len(t, notes, 1)
	assert.Equal(t, "Groceries", notes[0].Title)
	assert.Equal(t, "milk", notes[0].Body)
}
