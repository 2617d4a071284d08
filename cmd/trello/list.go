package main

import (
	"context"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <id>",
	Short: "Show list details",
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

		list := c.List(args[0])
		if err := list.Fetch(context.Background()); err != nil {
			handleError(err)
		}

		printList(cmd.OutOrStdout(), list, format)
	},
}

var cardsCmd = &cobra.Command{
	Use:   "cards <list-id>",
	Short: "List the cards in a list",
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

		cards, err := c.List(args[0]).ListCards(context.Background())
		if err != nil {
			handleError(err)
		}

		printCards(cmd.OutOrStdout(), cards, format)
	},
}

var addCardCmd = &cobra.Command{
	Use:   "add-card <list-id> <name>",
	Short: "Create a card in a list",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		format, err := currentFormat()
		if err != nil {
			handleError(err)
		}

		description, _ := cmd.Flags().GetString("description")

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		card, err := c.List(args[0]).AddCard(context.Background(), args[1], description)
		if err != nil {
			handleError(err)
		}

		printCard(cmd.OutOrStdout(), card, format)
	},
}

func init() {
	addCardCmd.Flags().StringP("description", "d", "", "Card description")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(cardsCmd)
	rootCmd.AddCommand(addCardCmd)
}
