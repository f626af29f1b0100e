// Package notebook is the Composition Root for the notebook application.
//
// It connects the note store (Domain Layer) with the JSON file adapter
// (Persistence Layer) the same way for the CLI and for library users.
//
// Notes live in a single JSON array file. Every mutation rewrites the whole
// file atomically before returning, so the file on disk always matches the
// store.
//
// Usage:
//
//	store, err := notebook.New(ctx, "notes.json",
//		notebook.WithLogger(logger),
//	)
//
//	// Add a note
//	n, err := store.Add(ctx, "Groceries", "milk")
//
//	// Edit it
//	_, err = store.Edit(ctx, n.ID, "Groceries", "milk,eggs")
//
//	// Delete it
//	err = store.Delete(ctx, n.ID)
package notebook
