package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	chalk "github.com/chalkdeck/chalk"
	"github.com/chalkdeck/chalk/internal/cli"
	mcpAdapter "github.com/chalkdeck/chalk/pkg/adapters/mcp"
	"github.com/chalkdeck/chalk/pkg/adapters/memory"
	"github.com/chalkdeck/chalk/pkg/session"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose the deck to MCP clients",
	Long:  `Starts an MCP server with navigation tools and the deck as a resource. Stdio by default; --sse serves over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		debug, _ := cmd.Flags().GetBool("debug")
		useSSE, _ := cmd.Flags().GetBool("sse")
		port, _ := cmd.Flags().GetInt("port")

		logger := cli.NewLogger(debug)

		engine, err := chalk.New(dir, chalk.WithLogger(logger))
		if err != nil {
			fmt.Printf("Error loading deck: %v\n", err)
			os.Exit(1)
		}

		sessions := session.NewManager(memory.NewStore(), session.WithLogger(logger))
		server := mcpAdapter.NewServer(engine, sessions, chalk.Version)

		if useSSE {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := server.ServeSSE(ctx, port); err != nil {
				fmt.Printf("MCP server error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if err := server.ServeStdio(); err != nil {
			fmt.Printf("MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().Bool("sse", false, "Serve over SSE instead of stdio")
	mcpCmd.Flags().IntP("port", "p", 8765, "Port for SSE mode")
}
