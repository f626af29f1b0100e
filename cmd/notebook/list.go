package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notebook/pkg/menu"
)

var (
	listFormat string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Long:  `List prints every note in insertion order as text, JSON or YAML.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := menu.ParseFormat(listFormat)
		if err != nil {
			return fmt.Errorf("invalid --format: %w", err)
		}

		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		if err := menu.WriteNotes(cmd.OutOrStdout(), store.List(cmd.Context()), format); err != nil {
			return fmt.Errorf("error listing notes: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listFormat, "format", "text", "Output format: text, json or yaml")
}
