package main

import (
	"context"

	"github.com/spf13/cobra"
)

var cardCmd = &cobra.Command{
	Use:   "card <id>",
	Short: "Show card details",
	Long:  `Fetch a card with its members, labels, attachments and badges.`,
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

		card := c.Card(args[0])
		if err := card.Fetch(context.Background()); err != nil {
			handleError(err)
		}

		printCard(cmd.OutOrStdout(), card, format)
	},
}

func init() {
	rootCmd.AddCommand(cardCmd)
}
