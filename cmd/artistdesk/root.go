package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
)

const checkMark = "\033[32m✓\033[0m"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "artistdesk",
	Short: "Artist management portal with role-based access control",
	Long: `ArtistDesk is a self-hosted artist management portal.

It provides account registration, role-based access (super admin,
artist manager, artist), artist and song management, and bulk CSV
import/export of artist records.

Quick start:
  artistdesk admin create-default-admin   # Seed the first login
  artistdesk serve                        # Start the portal

Management:
  artistdesk admin     # Manage admin accounts
  artistdesk version   # Show version`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "artistdesk.yaml", "config file path")
}
