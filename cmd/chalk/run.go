package main

import (
	"fmt"
	"os"

	"github.com/chalkdeck/chalk/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Step through the deck on plain stdio",
	Long:  `Prints one frame at a time without taking over the terminal. Enter advances, 'b' rewinds, 'q' quits. Works over SSH and in pipes.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		debug, _ := cmd.Flags().GetBool("debug")
		sessionID, _ := cmd.Flags().GetString("session")
		plain, _ := cmd.Flags().GetBool("plain")
		notes, _ := cmd.Flags().GetBool("notes")

		opts := cli.RunOptions{
			DeckPath:  dir,
			SessionID: sessionID,
			Debug:     debug,
			Plain:     plain,
			Notes:     notes,
		}
		if err := cli.RunHeadless(opts, os.Stdin, os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("session", "s", "local", "Session identifier")
	runCmd.Flags().Bool("plain", false, "Disable colors and escape sequences")
	runCmd.Flags().Bool("notes", false, "Show speaker notes under each frame")
}
