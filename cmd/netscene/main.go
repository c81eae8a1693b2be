// Netscene is a terminal dashboard for your local network and Pi-hole.
//
// It discovers devices via the system ARP table and retrieves ad-blocking
// statistics from a Pi-hole instance, automatically probing both the modern
// (v6 FTL) and legacy API endpoints so it works against any install.
//
// Usage:
//
//	netscene [command] [flags]
//
// Running without arguments launches the interactive dashboard.
// See 'netscene --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"netscene/internal/logging"
	"netscene/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "netscene",
	Short: "Local network and Pi-hole dashboard",
	Long: `A terminal dashboard for your local network and Pi-hole.

Discovers devices from the system ARP table and retrieves ad-blocking
statistics from a Pi-hole instance, probing both the modern and legacy
API endpoints so it works regardless of Pi-hole version.

If no command is specified, the interactive dashboard will launch automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run dashboard when no subcommand provided
		return runDashboard(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("netscene %s (commit: %s)\n", version.Version, version.Commit)
	},
}
