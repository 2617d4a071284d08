package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/boardkit/trello/internal/snapshot"
)

var exportCmd = &cobra.Command{
	Use:   "export <board-id>",
	Short: "Export a board to a SQLite file",
	Long: `Export a board with all of its lists (open and closed) and fully
fetched cards to a SQLite snapshot. Exporting the same board again replaces
its previous snapshot in the file.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, err := currentFormat()
		if err != nil {
			handleError(err)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			handleError(errors.New("--out is required"))
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		store, err := snapshot.Open(out)
		if err != nil {
			handleError(err)
		}
		defer store.Close()

		tree, err := snapshot.Export(context.Background(), store, c.Board(args[0]))
		if err != nil {
			store.Close()
			handleError(err)
		}

		printExport(cmd.OutOrStdout(), out, tree, format)
	},
}

func init() {
	exportCmd.Flags().String("out", "trello.db", "Path of the SQLite file to write")

	rootCmd.AddCommand(exportCmd)
}
