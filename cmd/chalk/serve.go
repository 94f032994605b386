package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	chalk "github.com/chalkdeck/chalk"
	"github.com/chalkdeck/chalk/internal/cli"
	httpAdapter "github.com/chalkdeck/chalk/pkg/adapters/http"
	"github.com/chalkdeck/chalk/pkg/adapters/memory"
	redisAdapter "github.com/chalkdeck/chalk/pkg/adapters/redis"
	"github.com/chalkdeck/chalk/pkg/ports"
	"github.com/chalkdeck/chalk/pkg/session"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the deck over HTTP",
	Long:  `Starts the HTTP server: deck and slide endpoints, shared navigation sessions, SSE events and Prometheus metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		debug, _ := cmd.Flags().GetBool("debug")
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")
		ttl, _ := cmd.Flags().GetDuration("session-ttl")

		logger := cli.NewLogger(debug)

		engine, err := chalk.New(dir, chalk.WithLogger(logger))
		if err != nil {
			fmt.Printf("Error loading deck: %v\n", err)
			os.Exit(1)
		}

		// Session store: Redis when shared across instances, memory
		// otherwise.
		var store ports.CursorStore
		if redisAddr != "" {
			redisStore := redisAdapter.New(redisAddr, "", 0, redisAdapter.WithTTL(ttl))
			defer redisStore.Close()
			store = redisStore
		} else {
			store = memory.NewStore()
		}
		sessions := session.NewManager(store, session.WithLogger(logger))

		handler := httpAdapter.NewHandler(engine, sessions,
			httpAdapter.WithVersion(chalk.Version),
			httpAdapter.WithLogger(logger),
		)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Chalk Server on %s\n", srv.Addr)
			fmt.Printf("Serving deck from: %s\n", dir)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Chalk Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for shared sessions (e.g. localhost:6379)")
	serveCmd.Flags().Duration("session-ttl", 24*time.Hour, "Session expiry when using Redis")
}
