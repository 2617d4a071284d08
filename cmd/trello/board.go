package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boardkit/trello/pkg/trello"
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List your boards",
	Long:  `List every board of the authenticated member.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		format, err := currentFormat()
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		boards, err := c.ListBoards(context.Background())
		if err != nil {
			handleError(err)
		}

		printBoards(cmd.OutOrStdout(), boards, format)
	},
}

var boardCmd = &cobra.Command{
	Use:   "board <id>",
	Short: "Show board details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, err := currentFormat()
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		board := c.Board(args[0])
		if err := board.Fetch(context.Background()); err != nil {
			handleError(err)
		}

		printBoard(cmd.OutOrStdout(), board, format)
	},
}

var listsCmd = &cobra.Command{
	Use:   "lists <board-id>",
	Short: "List the lists of a board",
	Long: `List the lists of a board.

Filter selects which lists are returned:
  open   - Lists that are not archived (default)
  closed - Archived lists
  all    - Both`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, err := currentFormat()
		if err != nil {
			handleError(err)
		}

		filterStr, _ := cmd.Flags().GetString("filter")
		filter := trello.ListFilter(filterStr)
		if !filter.Valid() {
			handleError(fmt.Errorf("invalid filter: %s (use open, closed or all)", filterStr))
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		lists, err := c.Board(args[0]).GetLists(context.Background(), filter)
		if err != nil {
			handleError(err)
		}

		printLists(cmd.OutOrStdout(), lists, format)
	},
}

func init() {
	listsCmd.Flags().StringP("filter", "f", string(trello.ListFilterOpen), "List filter: open, closed or all")

	rootCmd.AddCommand(boardsCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(listsCmd)
}
