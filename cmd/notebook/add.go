package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addTitle string
	addBody  string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a note",
	Long:  `Add creates a note with the next free ID and saves the notes file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		n, err := store.Add(cmd.Context(), addTitle, addBody)
		if err != nil {
			return fmt.Errorf("failed to add note: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Note added: %d\n", n.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Note title")
	addCmd.Flags().StringVarP(&addBody, "body", "b", "", "Note text")
	addCmd.MarkFlagRequired("title")
}
