package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/notebook/pkg/adapters/lifecycle"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Report changes to the notes file",
	Long: `Watch reloads the notes file every time it changes on disk and prints
how many notes it now holds. Stop it with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}

		events, err := store.Watch(ctx)
		if err != nil {
			return fmt.Errorf("failed to watch notes: %w", err)
		}

		source := lifecycle.NewSource(events)
		if err := source.Start(ctx); err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Watching %s (%d notes)\n", cfg.File, len(store.List(ctx)))
		for e := range source.Events() {
			if err := store.Open(ctx); err != nil {
				slog.Error("reload failed", "error", err)
				continue
			}
			fmt.Fprintf(out, "%s: %d notes\n", e, len(store.List(ctx)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
