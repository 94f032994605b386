package main

import (
	"fmt"
	"os"

	chalk "github.com/chalkdeck/chalk"
	"github.com/chalkdeck/chalk/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check the deck for problems",
	Long:  `Loads the whole deck and runs the lint rules: highlight bounds, unknown languages, empty slides, orphan notes. Errors fail the command; warnings are reported.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	if len(args) > 0 {
		dir = args[0]
	}

	// The Engine handles Loam initialization (ReadOnly by default) and
	// already fails on malformed content.
	eng, err := chalk.New(dir)
	if err != nil {
		return err
	}

	res := validator.ValidateLoaded(eng.Deck())

	if len(res.Issues) > 0 {
		fmt.Println(res.Summary())
	}
	if !res.OK() {
		return fmt.Errorf("deck has errors")
	}
	if len(res.Issues) > 0 {
		fmt.Println("Deck is valid (with warnings) ✅")
		return nil
	}
	fmt.Println("Deck is valid! ✅")
	return nil
}
