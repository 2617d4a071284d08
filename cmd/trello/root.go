package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trello",
	Short: "Trello board browser",
	Long: `A CLI for browsing Trello boards, lists and cards.

Credentials are read from TRELLO_API_KEY and TRELLO_TOKEN (plus
TRELLO_API_SECRET and TRELLO_TOKEN_SECRET for OAuth1), from a .env file in
the working directory, or from ~/.trello/config.toml.`,
	SilenceUsage: true,
}

// Global flags
var (
	jsonOutput   bool
	outputFormat string
	configPath   string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON (same as --output json)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", formatText, "Output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.trello/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each API request to stderr")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitGeneralError)
	}
}
