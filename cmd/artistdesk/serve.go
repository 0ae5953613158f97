package main

import (
	"fmt"
	"os"

	"github.com/artpar/artistdesk/bootstrap"
	"github.com/artpar/artistdesk/config"
	"github.com/spf13/cobra"
)

var (
	hotReload bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portal server",
	Long: `Start the ArtistDesk portal server.

The server will:
  - Load configuration from artistdesk.yaml (or --config)
  - Or load configuration from ARTISTDESK_* environment variables
  - Connect to the database and run migrations
  - Serve the portal with session authentication and role checks

Environment variables (for Docker deployments):
  ARTISTDESK_DATABASE_DSN     - Database path (default: artistdesk.db)
  ARTISTDESK_SERVER_PORT      - Server port (default: 8080)
  ARTISTDESK_SESSION_LIFETIME - Session lifetime (default: 24h)
  ARTISTDESK_LOG_LEVEL        - Log level: debug, info, warn, error

Examples:
  artistdesk serve
  artistdesk serve --config /etc/artistdesk/config.yaml
  artistdesk serve --hot-reload=false`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&hotReload, "hot-reload", true, "enable hot reload of configuration")
}

func runServe(cmd *cobra.Command, args []string) error {
	hasConfigFile := false
	if _, err := os.Stat(cfgFile); err == nil {
		hasConfigFile = true
	}

	var app *bootstrap.App
	var err error

	if hasConfigFile && hotReload {
		// Hot reload only works with a config file
		app, err = bootstrap.NewWithHotReload(cfgFile)
	} else {
		cfg, loadErr := config.LoadWithFallback(cfgFile)
		if loadErr != nil {
			return fmt.Errorf("error loading config: %w", loadErr)
		}

		if !hasConfigFile {
			fmt.Println("Running with environment variables (no config file)")
		}

		app, err = bootstrap.New(cfg)
	}

	if err != nil {
		return fmt.Errorf("error initializing: %w", err)
	}

	// Run (blocks until shutdown)
	return app.Run()
}
