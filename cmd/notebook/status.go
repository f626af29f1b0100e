package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/notebook/pkg/adapters/fs"
	"github.com/aretw0/notebook/pkg/core"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show internal state as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := fs.NewRepository(fs.Config{Path: cfg.File, Logger: slog.Default()})
		store := core.NewStore(repo, core.WithReadOnly(cfg.ReadOnly), core.WithLogger(slog.Default()))
		if err := store.Open(cmd.Context()); err != nil {
			return fmt.Errorf("failed to open notebook: %w", err)
		}

		state := map[string]any{}
		for _, c := range []introspection.Component{store, repo} {
			if i, ok := c.(introspection.Introspectable); ok {
				state[c.ComponentType()] = i.State()
			}
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(state); err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
