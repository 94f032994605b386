package main

import (
	"fmt"
	"strings"

	chalk "github.com/chalkdeck/chalk"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of chalk",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("chalk version %s\n", strings.TrimSpace(chalk.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
