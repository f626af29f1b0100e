package platform

import (
	"context"

	"github.com/aretw0/notebook/pkg/adapters/fs"
	"github.com/aretw0/notebook/pkg/core"
)

// New wires a Store to its repository and loads the persisted notes.
//
//	store, err := notebook.New(ctx, "notes.json", notebook.WithReadOnly(true))
//
// The path is the JSON notes file used by the default adapter.
func New(ctx context.Context, path string, opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo := o.repository
	if repo == nil {
		repo = fs.NewRepository(fs.Config{
			Path:   path,
			Logger: o.logger,
		})
	}

	storeOpts := []core.StoreOption{
		core.WithReadOnly(o.readOnly),
		core.WithLogger(o.logger),
	}
	if o.clock != nil {
		storeOpts = append(storeOpts, core.WithClock(o.clock))
	}

	store := core.NewStore(repo, storeOpts...)
	if err := store.Open(ctx); err != nil {
		return nil, err
	}

	if o.logger != nil {
		o.logger.Debug("notebook ready", "path", path, "read_only", o.readOnly)
	}
	return store, nil
}
