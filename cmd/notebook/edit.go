package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notebook/pkg/core"
)

var (
	editTitle string
	editBody  string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note",
	Long: `Edit replaces the title and/or text of a note and refreshes its update time.
A flag that is not given keeps the current value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := core.ParseID(args[0])
		if err != nil {
			return err
		}

		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		current, err := store.Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("error editing note: %w", err)
		}

		title, body := current.Title, current.Body
		if cmd.Flags().Changed("title") {
			title = editTitle
		}
		if cmd.Flags().Changed("body") {
			body = editBody
		}

		if _, err := store.Edit(cmd.Context(), id, title, body); err != nil {
			return fmt.Errorf("error editing note: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Note edited: %d\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New note title")
	editCmd.Flags().StringVarP(&editBody, "body", "b", "", "New note text")
	editCmd.MarkFlagsOneRequired("title", "body")
}
