package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chalk",
	Short: "Chalk is a terminal presenter for code-heavy decks",
	Long:  `Chalk loads a deck of Markdown slides with annotated code blocks and presents them in the terminal, over HTTP or to MCP clients.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Directory containing the deck")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
