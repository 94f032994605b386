package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Scaffold a starter deck",
	Long:  `Creates a deck.yaml manifest and a couple of example slides showing steps, code highlights and speaker notes.`,
	Run: func(cmd *cobra.Command, args []string) {
		targetDir := "."
		if len(args) > 0 {
			targetDir = args[0]
		}
		if err := scaffoldDeck(targetDir); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deck scaffolded in %s\n", targetDir)
		fmt.Println("Try: chalk present --dir", targetDir)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func scaffoldDeck(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	manifestPath := filepath.Join(dir, "deck.yaml")
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", manifestPath)
	}

	files := map[string]string{
		"deck.yaml": `title: My First Deck
author: you
slides:
  - welcome
  - code
`,
		"welcome.md": `---
id: welcome
title: Welcome
notes: Greet the audience, mention the agenda.
---
This is **Chalk**.

<!--step-->

Each step reveals a little more.
`,
		"code.md": "---\nid: code\ntitle: Showing Code\n---\nCode blocks get syntax colors and line emphasis:\n\n```go {hl=\"3\" caption=\"the important line\"}\nfunc main() {\n\tname := \"world\"\n\tfmt.Println(\"hello\", name)\n}\n```\n",
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}
