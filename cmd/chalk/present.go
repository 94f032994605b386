package main

import (
	"fmt"
	"os"

	"github.com/chalkdeck/chalk/internal/cli"
	"github.com/spf13/cobra"
)

var presentCmd = &cobra.Command{
	Use:   "present",
	Short: "Present the deck full-screen in the terminal",
	Long:  `Starts the interactive presenter. Arrow keys and space move through reveals, 'n' toggles speaker notes, 'q' quits.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		debug, _ := cmd.Flags().GetBool("debug")
		sessionID, _ := cmd.Flags().GetString("session")
		watch, _ := cmd.Flags().GetBool("watch")

		opts := cli.RunOptions{
			DeckPath:  dir,
			SessionID: sessionID,
			Debug:     debug,
			Watch:     watch,
		}
		if err := cli.RunPresent(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(presentCmd)
	presentCmd.Flags().StringP("session", "s", "local", "Session identifier")
	presentCmd.Flags().BoolP("watch", "w", false, "Reload the deck when files change")
}
