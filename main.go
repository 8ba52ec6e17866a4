package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// @title PictoCat API
// @version 1.0
// @description Gin-Gonic server for the PictoCat collectible cat game
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
var rootCmd = &cobra.Command{
	Use:   "pictocat",
	Short: "PictoCat game backend",
	Long: `PictoCat game backend.

Available subcommands:
  serve          - Run the HTTP and socket.io server (default)
  migrate        - Migrate the schema, seed defaults and repair stored profiles
  reset-missions - Redraw every player's daily missions now`,
	SilenceUsage: true,
}

func main() {
	rootCmd.RunE = serveCmd.RunE
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(resetMissionsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
