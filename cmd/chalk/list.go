package main

import (
	"fmt"
	"os"

	chalk "github.com/chalkdeck/chalk"
	"github.com/chalkdeck/chalk/internal/presentation/outline"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the deck outline",
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")

		eng, err := chalk.New(dir)
		if err != nil {
			fmt.Printf("Error loading deck: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(outline.Generate(eng.Deck(), nil))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
